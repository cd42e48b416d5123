package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. used_count is only ever moved by
// guarded conditional updates.
type CouponModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code          string    `gorm:"type:varchar(50);unique;not null"`
	Type          string    `gorm:"type:varchar(20);not null"`
	Value         int64     `gorm:"not null"`
	MinOrderValue int64     `gorm:"not null;default:0"`
	MaxDiscount   int64     `gorm:"not null;default:0"`
	ValidFrom     time.Time `gorm:"not null"`
	ValidUntil    time.Time `gorm:"not null"`
	MaxUses       int       `gorm:"not null;default:0"`
	UsedCount     int       `gorm:"not null;default:0"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
