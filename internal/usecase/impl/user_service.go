// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"wellkart/config"
	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// registrationConfig parameterizes the shared registration flow per role.
type registrationConfig struct {
	Name               string
	Email              string
	Password           string
	Role               entity.Role
	BuildNewUser       func() *entity.User
	AttachProfile      func(*entity.User)
	HasProfile         func(*entity.User) bool
	ProfileExistsError func() error
	PreCreate          func(ctx context.Context, userRepo repository.UserRepository) error
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		sessionRepo:       params.SessionRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer orchestrates the storefront customer registration process.
func (srv *userService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleCustomer,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				Name:            input.Name,
				Email:           input.Email,
				Phone:           input.Phone,
				CustomerProfile: &entity.CustomerProfile{},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.CustomerProfile = &entity.CustomerProfile{UserID: user.ID}
		},
		HasProfile: func(user *entity.User) bool { return user.CustomerProfile != nil },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("customer profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterDoctor orchestrates the doctor-portal registration process.
func (srv *userService) RegisterDoctor(ctx context.Context, input *usecase.RegisterDoctorInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleDoctor,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				Name:  input.Name,
				Email: input.Email,
				Phone: input.Phone,
				DoctorProfile: &entity.DoctorProfile{
					Specialization: input.Specialization,
					LicenseNumber:  input.LicenseNumber,
				},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.DoctorProfile = &entity.DoctorProfile{
				UserID:         user.ID,
				Specialization: input.Specialization,
				LicenseNumber:  input.LicenseNumber,
			}
		},
		HasProfile: func(user *entity.User) bool { return user.DoctorProfile != nil },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("doctor profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterInfluencer orchestrates the influencer-portal registration process.
// An empty referral code is replaced with a generated one; a chosen code that
// is already in use rejects the registration.
func (srv *userService) RegisterInfluencer(ctx context.Context, input *usecase.RegisterInfluencerInput) (*usecase.RegisterOutput, error) {
	referralCode := normalizeReferralCode(input.ReferralCode)
	if referralCode == "" {
		referralCode = generateReferralCode(input.Name)
	}

	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleInfluencer,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				Name:  input.Name,
				Email: input.Email,
				Phone: input.Phone,
				InfluencerProfile: &entity.InfluencerProfile{
					ReferralCode:   referralCode,
					CommissionRate: input.CommissionRate,
				},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.InfluencerProfile = &entity.InfluencerProfile{
				UserID:         user.ID,
				ReferralCode:   referralCode,
				CommissionRate: input.CommissionRate,
			}
		},
		HasProfile: func(user *entity.User) bool { return user.InfluencerProfile != nil },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("influencer profile already registered for this account")
		},
		PreCreate: func(ctx context.Context, userRepo repository.UserRepository) error {
			_, err := userRepo.FindByReferralCode(ctx, referralCode)
			if err == nil {
				return errors.Wrap(domainerrors.ErrReferralCodeTaken, "referral code already in use")
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check referral code availability")
			}

			return nil
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterAdmin orchestrates the dashboard administrator registration process.
// The delivery layer gates this behind the super-admin role.
func (srv *userService) RegisterAdmin(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleAdmin,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				Name:         input.Name,
				Email:        input.Email,
				AdminProfile: &entity.AdminProfile{Super: input.Super},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.AdminProfile = &entity.AdminProfile{UserID: user.ID, Super: input.Super}
		},
		HasProfile: func(user *entity.User) bool { return user.AdminProfile != nil },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("admin profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

func (srv *userService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		if cfg.PreCreate != nil {
			if err := cfg.PreCreate(ctx, userRepo); err != nil {
				return err
			}
		}

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, cfg.Email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return srv.handleNewRegistration(ctx, cfg, userRepo, authRepo, &registeredUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		return srv.handleExistingAccountRegistration(ctx, cfg, userRepo, authRecord, &registeredUser)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", cfg.Role), slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) handleNewRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	registeredUser **entity.User,
) error {
	if err := srv.hasher.ValidatePasswordStrength(cfg.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", cfg.Role), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := cfg.BuildNewUser()
	newUser.Status = entity.UserStatusActive

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: cfg.Email,
		PasswordHash:   hashedPassword,
	}

	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to create authentication during registration")
	}

	*registeredUser = newUser

	return nil
}

func (srv *userService) handleExistingAccountRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRecord *entity.Authentication,
	registeredUser **entity.User,
) error {
	if !srv.hasher.Check(cfg.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch when attaching profile", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during registration")
	}

	existingUser, err := userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load existing user for registration")
	}

	if cfg.HasProfile(existingUser) {
		srv.log(ctx).Warn("Profile already exists for account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))

		return cfg.ProfileExistsError()
	}

	if cfg.Name != "" {
		existingUser.Name = cfg.Name
	}

	cfg.AttachProfile(existingUser)

	if err := userRepo.Update(ctx, existingUser); err != nil {
		return errors.Wrap(err, "failed to update user profile during registration")
	}

	srv.log(ctx).Debug("Attached profile to existing account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))
	*registeredUser = existingUser

	return nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.loadLoginUser(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if !loggedInUser.IsActive() {
		srv.log(ctx).Warn("Login rejected for disabled account", slog.Any("userID", loggedInUser.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "login failed")
	}

	roles := loggedInUser.Roles()

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, roles.ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginSession(ctx, loggedInUser.ID, refreshTokenString, input.UserAgent, input.IP); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load credentials from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		var findAuthErr error
		authRecord, findAuthErr = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

func (srv *userService) loadLoginUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var loggedInUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findUserErr error
		loggedInUser, findUserErr = userRepo.FindByID(ctx, userID)
		if findUserErr != nil {
			return errors.Wrap(findUserErr, "failed to find user by id")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login user transaction")
	}

	return loggedInUser, nil
}

func (srv *userService) persistLoginSession(ctx context.Context, userID uuid.UUID, refreshTokenString, userAgent, ip string) error {
	if srv.maxActiveSessions > 0 {
		// When the session cap is enabled, keep count and insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			sessionRepo := repoFactory.SessionRepo()

			activeSessions, err := sessionRepo.CountActiveSessionsByUserID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if activeSessions >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
			}

			return srv.storeSessionWithRepo(ctx, sessionRepo, userID, refreshTokenString, userAgent, ip)
		}); err != nil {
			return errors.Wrap(err, "failed to execute login session transaction")
		}

		return nil
	}

	// No session cap: direct insert avoids unnecessary transaction overhead.
	if err := srv.storeSessionWithRepo(ctx, srv.sessionRepo, userID, refreshTokenString, userAgent, ip); err != nil {
		return errors.Wrap(err, "failed to create session during login")
	}

	return nil
}

func (srv *userService) storeSessionWithRepo(ctx context.Context, sessionRepo repository.SessionRepository, userID uuid.UUID, refreshTokenString, userAgent, ip string) error {
	newSession := &entity.Session{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := sessionRepo.CreateSession(ctx, newSession); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "invalid refresh token")
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		// The session row must still exist; a revoked device cannot refresh.
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		session, err := sessionRepo.FindSessionByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}
		if session.Expired(time.Now()) {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session expired")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive() {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "account disabled")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout invalidates the session behind the given refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete its session row.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.sessionRepo.DeleteSessionByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// Already logged out; nothing to do.
			return nil
		}
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

func normalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// generateReferralCode derives a code from the influencer's name plus a random
// suffix, e.g. "PRIYA-3F7A2C".
func generateReferralCode(name string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			prefix.WriteRune(r)
		}
		if prefix.Len() >= 6 {
			break
		}
	}
	if prefix.Len() == 0 {
		prefix.WriteString("REF")
	}

	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)

	return prefix.String() + "-" + strings.ToUpper(hex.EncodeToString(suffix))
}
