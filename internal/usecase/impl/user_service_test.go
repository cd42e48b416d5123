package impl

import (
	"context"
	"testing"
	"time"

	"wellkart/internal/domain/entity"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	mockSvc "wellkart/internal/mocks/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(maxActiveSessions),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterCustomer_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterCustomerInput{
		Name:     "Test Customer",
		Email:    "customer@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterCustomer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotNil(t, output.User.CustomerProfile)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
}

func TestUserService_RegisterDoctor_AttachToExistingAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterDoctorInput{
		Name:           "Dr. Example",
		Email:          "doctor@example.com",
		Password:       "Password123!",
		Specialization: "Dermatology",
		LicenseNumber:  "LIC-42",
	}
	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: input.Email,
		PasswordHash:   "hashed_password",
	}
	existingUser := &entity.User{
		ID:              userID,
		Email:           input.Email,
		Status:          entity.UserStatusActive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(authRecord, nil)

			fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockUserRepo.EXPECT().Update(ctx, existingUser).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterDoctor(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User.DoctorProfile)
	assert.Equal(t, input.Specialization, output.User.DoctorProfile.Specialization)
	assert.NotNil(t, output.User.CustomerProfile)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:     "customer@example.com",
		Password:  "Password123!",
		UserAgent: "test-agent",
		IP:        "192.0.2.1",
	}
	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: input.Email,
		PasswordHash:   "hashed_password",
	}
	user := &entity.User{
		ID:              userID,
		Email:           input.Email,
		Status:          entity.UserStatusActive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
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

			_ = fn(mockFactory)
		}).
		Return(nil).
		Twice()

	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{string(entity.RoleCustomer)}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("token-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	fx.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "token-hash", session.TokenHash)
			assert.Equal(t, input.UserAgent, session.UserAgent)
			assert.Equal(t, input.IP, session.IP)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh-token"}
	user := &entity.User{
		ID:              userID,
		Status:          entity.UserStatusActive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "token-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(newTestClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token-hash")
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{string(entity.RoleCustomer)}).
		Return("new-access-token", "unused-refresh", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().FindSessionByTokenHash(ctx, "token-hash").Return(session, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LogoutInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(newTestClaims(userID), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token-hash")
	fx.sessionRepo.EXPECT().DeleteSessionByTokenHash(ctx, "token-hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}
