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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProfileService(txManager, userRepo, newDiscardLogger())

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:              userID,
		Name:            "Asha Patel",
		Email:           "asha@example.com",
		Status:          entity.UserStatusActive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newName := "Asha P."
	newPhone := "+919876543210"
	input := &usecase.UpdateProfileInput{Name: &newName, Phone: &newPhone}
	user := &entity.User{ID: userID, Name: "Asha Patel", Phone: "+911112223334"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newName, got.Name)
	assert.Equal(t, newPhone, got.Phone)
}

func TestProfileService_UpdateProfile_PartialFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newName := "Asha P."
	input := &usecase.UpdateProfileInput{Name: &newName}
	user := &entity.User{ID: userID, Name: "Asha Patel", Phone: "+911112223334"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, newName, got.Name)
	assert.Equal(t, "+911112223334", got.Phone)
}

func TestProfileService_UpdateDoctorProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newSpecialization := "Dermatology"
	input := &usecase.UpdateDoctorProfileInput{Specialization: &newSpecialization}
	user := &entity.User{
		ID:            userID,
		DoctorProfile: &entity.DoctorProfile{UserID: userID, Specialization: "General Medicine"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateDoctorProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, newSpecialization, got.DoctorProfile.Specialization)
}

func TestProfileService_UpdateDoctorProfile_NoDoctorProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newSpecialization := "Dermatology"
	input := &usecase.UpdateDoctorProfileInput{Specialization: &newSpecialization}
	user := &entity.User{ID: userID, CustomerProfile: &entity.CustomerProfile{UserID: userID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateDoctorProfile(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_ListUsers_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.ListUsersInput{Role: entity.RoleDoctor, Limit: 20, Offset: 0}
	users := []*entity.User{
		{ID: uuid.New(), Name: "Dr. Mehta", DoctorProfile: &entity.DoctorProfile{}},
	}

	expectedFilter := repository.UserFilter{Role: entity.RoleDoctor, Limit: 20, Offset: 0}
	fx.userRepo.EXPECT().List(ctx, expectedFilter).Return(users, nil)
	fx.userRepo.EXPECT().Count(ctx, expectedFilter).Return(int64(1), nil)

	output, err := fx.service.ListUsers(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, users, output.Users)
	assert.Equal(t, int64(1), output.Total)
}

func TestProfileService_SetUserStatus_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Status: entity.UserStatusActive}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(ctx context.Context, updated *entity.User) error {
					assert.Equal(t, entity.UserStatusInactive, updated.Status)

					return nil
				})

			return fn(mockFactory)
		})

	err := fx.service.SetUserStatus(ctx, userID, entity.UserStatusInactive)

	require.NoError(t, err)
}

func TestProfileService_SetUserStatus_UnknownStatus(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	err := fx.service.SetUserStatus(ctx, uuid.New(), entity.UserStatus("banned"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
