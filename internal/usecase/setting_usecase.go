// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"
)

// SettingUsecase defines the interface for platform settings. One document
// exists per concern; saving is an upsert keyed by the concern.
type SettingUsecase interface {
	GetSetting(ctx context.Context, key entity.SettingKey) (*entity.Setting, error)
	SaveSetting(ctx context.Context, key entity.SettingKey, values map[string]string) (*entity.Setting, error)
}
