package impl

import (
	"context"
	"log/slog"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/usecase"

	"github.com/pkg/errors"
)

// settingService implements the SettingUsecase interface.
type settingService struct {
	settingRepo repository.SettingRepository
	logger      *slog.Logger
}

// NewSettingService is the constructor for settingService.
func NewSettingService(
	settingRepo repository.SettingRepository,
	logger *slog.Logger,
) usecase.SettingUsecase {
	return &settingService{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *settingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSetting retrieves the settings document for a concern.
func (srv *settingService) GetSetting(ctx context.Context, key entity.SettingKey) (*entity.Setting, error) {
	if !key.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown settings key")
	}

	setting, err := srv.settingRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "settings not found")
		}

		return nil, errors.Wrap(err, "failed to find settings")
	}

	return setting, nil
}

// SaveSetting upserts the settings document for a concern. A concern can
// never exist twice.
func (srv *settingService) SaveSetting(ctx context.Context, key entity.SettingKey, values map[string]string) (*entity.Setting, error) {
	srv.log(ctx).Info("Saving settings", slog.Any("key", key))

	if !key.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown settings key")
	}

	setting := &entity.Setting{Key: key, Values: values}
	if err := srv.settingRepo.Upsert(ctx, setting); err != nil {
		srv.log(ctx).Error("Failed to save settings", slog.Any("error", err), slog.Any("key", key))

		return nil, errors.Wrap(err, "failed to save settings")
	}

	return setting, nil
}
