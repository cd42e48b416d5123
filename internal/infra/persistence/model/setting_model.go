package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel mirrors the 'settings' table, one singleton row per concern.
type SettingModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Key       string            `gorm:"type:varchar(50);unique;not null"`
	Values    map[string]string `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
