package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel mirrors the 'leads' table.
type LeadModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(20)"`
	Source    string    `gorm:"type:varchar(100);index"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
