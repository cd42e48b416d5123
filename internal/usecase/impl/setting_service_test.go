package impl

import (
	"context"
	"testing"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	"wellkart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingServiceFixtures holds all test dependencies for setting service tests.
type settingServiceFixtures struct {
	service     usecase.SettingUsecase
	settingRepo *mockRepo.MockSettingRepository
}

func createTestSettingService(t *testing.T) settingServiceFixtures {
	settingRepo := mockRepo.NewMockSettingRepository(t)

	service := NewSettingService(settingRepo, newDiscardLogger())

	return settingServiceFixtures{
		service:     service,
		settingRepo: settingRepo,
	}
}

func TestSettingService_GetSetting_Success(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()
	setting := &entity.Setting{
		Key:    entity.SettingKeySEO,
		Values: map[string]string{"title": "WellKart"},
	}

	fx.settingRepo.EXPECT().FindByKey(ctx, entity.SettingKeySEO).Return(setting, nil)

	got, err := fx.service.GetSetting(ctx, entity.SettingKeySEO)

	require.NoError(t, err)
	assert.Equal(t, setting, got)
}

func TestSettingService_GetSetting_UnknownKey(t *testing.T) {
	fx := createTestSettingService(t)

	got, err := fx.service.GetSetting(context.Background(), entity.SettingKey("nonsense"))

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSettingService_GetSetting_NotFound(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()

	fx.settingRepo.EXPECT().
		FindByKey(ctx, entity.SettingKeyShipping).
		Return(nil, repository.ErrSettingNotFound)

	got, err := fx.service.GetSetting(ctx, entity.SettingKeyShipping)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSettingService_SaveSetting_Upserts(t *testing.T) {
	fx := createTestSettingService(t)

	ctx := context.Background()
	values := map[string]string{"freeShippingAbove": "50000"}

	fx.settingRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Setting")).
		RunAndReturn(func(ctx context.Context, setting *entity.Setting) error {
			assert.Equal(t, entity.SettingKeyShipping, setting.Key)
			assert.Equal(t, values, setting.Values)

			return nil
		})

	setting, err := fx.service.SaveSetting(ctx, entity.SettingKeyShipping, values)

	require.NoError(t, err)
	assert.Equal(t, values, setting.Values)
}

func TestSettingService_SaveSetting_UnknownKey(t *testing.T) {
	fx := createTestSettingService(t)

	setting, err := fx.service.SaveSetting(context.Background(), entity.SettingKey("nonsense"), nil)

	require.Error(t, err)
	assert.Nil(t, setting)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
