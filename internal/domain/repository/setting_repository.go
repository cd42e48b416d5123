package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"
)

// ErrSettingNotFound is returned when no document exists for a settings key.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines persistence for singleton-per-concern settings.
type SettingRepository interface {
	// FindByKey retrieves the settings document for a concern.
	FindByKey(ctx context.Context, key entity.SettingKey) (*entity.Setting, error)

	// Upsert creates the document for the key if absent, else replaces its
	// values. A concern can never exist twice.
	Upsert(ctx context.Context, setting *entity.Setting) error
}
