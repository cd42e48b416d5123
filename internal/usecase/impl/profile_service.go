package impl

import (
	"context"
	"log/slog"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the acting user's account with all attached profiles.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields to the user's own account.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// UpdateDoctorProfile applies doctor-specific fields. The account must carry
// a doctor profile.
func (srv *profileService) UpdateDoctorProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateDoctorProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating doctor profile", slog.Any("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.DoctorProfile == nil {
			return errors.Wrap(domainerrors.ErrNotFound, "account has no doctor profile")
		}

		if input.Specialization != nil {
			user.DoctorProfile.Specialization = *input.Specialization
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update doctor profile", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to update doctor profile")
	}

	return updated, nil
}

// ListUsers retrieves one page of users matching the filter plus the total.
func (srv *profileService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	filter := repository.UserFilter{
		Role:   input.Role,
		Status: input.Status,
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	total, err := srv.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	return &usecase.ListUsersOutput{Users: users, Total: total}, nil
}

// GetUser retrieves any user by id. Admin operation.
func (srv *profileService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.GetProfile(ctx, id)
}

// SetUserStatus enables or disables an account. Accounts are never hard-deleted.
func (srv *profileService) SetUserStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	srv.log(ctx).Info("Setting user status", slog.Any("userID", id), slog.Any("status", status))

	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown user status")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.Status = status

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user status")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set user status", slog.Any("error", err), slog.Any("userID", id))

		return errors.Wrap(err, "failed to set user status")
	}

	return nil
}
