package impl

import (
	"context"
	"testing"
	"time"

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

// expectSuccessfulCredentialCheck wires the credential and user lookups shared
// by the session-limit tests so each test only configures the session side.
func expectSuccessfulCredentialCheck(t *testing.T, fx userServiceFixtures, email, password string, userID uuid.UUID) {
	t.Helper()

	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed_password"}
	user := &entity.User{
		ID:              userID,
		Status:          entity.UserStatusActive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo).Maybe()
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo).Maybe()

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, email).
				Return(authRecord, nil).
				Maybe()
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil).Maybe()

			return fn(mockFactory)
		}).
		Twice()

	fx.hasher.EXPECT().Check(password, authRecord.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{string(entity.RoleCustomer)}).
		Return("access-token", "refresh-token", nil)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "customer@example.com", Password: "Password123!"}

	expectSuccessfulCredentialCheck(t, fx, input.Email, input.Password, userID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(3, nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestUserService_Login_UnderSessionLimit(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "customer@example.com", Password: "Password123!"}

	expectSuccessfulCredentialCheck(t, fx, input.Email, input.Password, userID)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("token-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(2, nil)
			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				RunAndReturn(func(ctx context.Context, session *entity.Session) error {
					assert.Equal(t, userID, session.UserID)
					assert.Equal(t, "token-hash", session.TokenHash)

					return nil
				})

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}
