package entity

import (
	"time"

	"github.com/google/uuid"
)

// SettingKey identifies one singleton settings document.
type SettingKey string

const (
	// SettingKeySEO holds meta title/description and social defaults.
	SettingKeySEO SettingKey = "seo"
	// SettingKeyBusiness holds legal name, support contacts and tax ids.
	SettingKeyBusiness SettingKey = "business"
	// SettingKeyShipping holds shipping fees and thresholds.
	SettingKeyShipping SettingKey = "shipping"
)

// IsValid checks if the key names a known settings concern.
func (k SettingKey) IsValid() bool {
	switch k {
	case SettingKeySEO, SettingKeyBusiness, SettingKeyShipping:
		return true
	default:
		return false
	}
}

// Setting is a singleton-per-concern document. Writes are upserts keyed by
// Key, so a concern can never exist twice.
type Setting struct {
	ID        uuid.UUID
	Key       SettingKey
	Values    map[string]string // Flat key/value payload for the concern.
	UpdatedAt time.Time
	CreatedAt time.Time
}
