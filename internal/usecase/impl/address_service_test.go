package impl

import (
	"context"
	"testing"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	service := NewAddressService(txManager, addressRepo, newDiscardLogger())

	return addressServiceFixtures{
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

func newTestAddressInput(isDefault bool) *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:      "Home",
		Line1:      "42 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		PostalCode: "560001",
		Country:    "IN",
		IsDefault:  isDefault,
	}
}

func TestAddressService_CreateAddress_Default_ClearsPrevious(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := newTestAddressInput(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
			mockAddressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				RunAndReturn(func(ctx context.Context, address *entity.Address) error {
					assert.Equal(t, userID, address.UserID)
					assert.True(t, address.IsDefault)
					address.ID = uuid.New()

					return nil
				})

			return fn(mockFactory)
		})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.NotEqual(t, uuid.Nil, address.ID)
	assert.Equal(t, "42 MG Road", address.Line1)
}

func TestAddressService_CreateAddress_NonDefault_SkipsClear(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := newTestAddressInput(false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			return fn(mockFactory)
		})

	address, err := fx.service.CreateAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_OwnershipViolation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	foreign := &entity.Address{ID: addressID, UserID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(foreign, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAddress(ctx, userID, addressID, newTestAddressInput(false))

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(nil, repository.ErrAddressNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_SetDefaultAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, UserID: userID, IsDefault: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(address, nil)
			mockAddressRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
			mockAddressRepo.EXPECT().
				UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				RunAndReturn(func(ctx context.Context, updated *entity.Address) error {
					assert.Equal(t, addressID, updated.ID)
					assert.True(t, updated.IsDefault)

					return nil
				})

			return fn(mockFactory)
		})

	err := fx.service.SetDefaultAddress(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_ListAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addresses := []*entity.Address{
		{ID: uuid.New(), UserID: userID, Label: "Home", IsDefault: true},
		{ID: uuid.New(), UserID: userID, Label: "Office"},
	}

	fx.addressRepo.EXPECT().FindAddressesByUserID(ctx, userID).Return(addresses, nil)

	got, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, addresses, got)
}
