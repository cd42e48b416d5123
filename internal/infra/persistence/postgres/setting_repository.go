package postgres

import (
	"context"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// FindByKey retrieves the settings document for a concern.
func (repo *settingRepository) FindByKey(ctx context.Context, key entity.SettingKey) (*entity.Setting, error) {
	var settingM model.SettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", string(key)).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting by key")
	}

	return toSettingDomain(&settingM), nil
}

// Upsert creates the document for the key if absent, else replaces its values.
// ON CONFLICT on the unique key column keeps the singleton-per-concern invariant
// even under concurrent writes.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"values", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	setting.ID = settingM.ID
	setting.CreatedAt = settingM.CreatedAt
	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSettingDomain converts a GORM SettingModel to a domain Setting entity.
func toSettingDomain(data *model.SettingModel) *entity.Setting {
	if data == nil {
		return nil
	}

	return &entity.Setting{
		ID:        data.ID,
		Key:       entity.SettingKey(data.Key),
		Values:    data.Values,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSettingDomain converts a domain Setting entity to a GORM SettingModel.
func fromSettingDomain(data *entity.Setting) *model.SettingModel {
	if data == nil {
		return nil
	}

	return &model.SettingModel{
		ID:     data.ID,
		Key:    string(data.Key),
		Values: data.Values,
	}
}
