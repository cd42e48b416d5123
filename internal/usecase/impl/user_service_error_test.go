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

func TestUserService_RegisterInfluencer_ReferralCodeTaken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInfluencerInput{
		Name:         "Taken Code",
		Email:        "influencer@example.com",
		Password:     "Password123!",
		ReferralCode: "taken10",
	}
	otherUser := &entity.User{ID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			// Chosen codes are normalized to upper case before the check.
			mockUserRepo.EXPECT().
				FindByReferralCode(ctx, "TAKEN10").
				Return(otherUser, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterInfluencer(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrReferralCodeTaken))
}

func TestUserService_RegisterCustomer_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterCustomerInput{
		Name:     "Weak Password",
		Email:    "weak@example.com",
		Password: "short",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			fx.hasher.EXPECT().
				ValidatePasswordStrength(input.Password).
				Return(domainerrors.ErrPasswordStrength)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterCustomer(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "customer@example.com", Password: "wrong"}
	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		PasswordHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "disabled@example.com", Password: "Password123!"}
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed_password"}
	user := &entity.User{
		ID:              userID,
		Status:          entity.UserStatusInactive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo).Maybe()
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo).Maybe()

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil).
				Maybe()
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil).Maybe()

			return fn(mockFactory)
		}).
		Twice()

	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestUserService_RefreshToken_SessionRevoked(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(newTestClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				FindSessionByTokenHash(ctx, "token-hash").
				Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestUserService_Logout_MissingSessionIsNoOp(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LogoutInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(newTestClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token-hash")
	fx.sessionRepo.EXPECT().
		DeleteSessionByTokenHash(ctx, "token-hash").
		Return(repository.ErrSessionNotFound)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}
