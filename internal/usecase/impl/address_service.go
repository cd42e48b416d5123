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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager:   txManager,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses retrieves the user's address book.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an entry to the user's address book. When the new entry
// is the default, every other entry is unset in the same transaction.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Debug("Creating address", slog.Any("userID", userID))

	address := addressFromInput(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// UpdateAddress replaces an address the user owns.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Debug("Updating address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		existing, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		address := addressFromInput(userID, input)
		address.ID = existing.ID

		if address.IsDefault && !existing.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update address", slog.Any("error", err), slog.Any("addressID", addressID))

		return nil, errors.Wrap(err, "failed to update address")
	}

	return updated, nil
}

// DeleteAddress removes an address the user owns.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete address", slog.Any("error", err), slog.Any("addressID", addressID))

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefaultAddress switches the user's default transactionally: every entry
// is unset, then the chosen one is set. At most one default can ever exist.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Debug("Setting default address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := srv.loadOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear previous default address")
		}

		address.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to set default address")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set default address", slog.Any("error", err), slog.Any("addressID", addressID))

		return errors.Wrap(err, "failed to set default address")
	}

	return nil
}

// loadOwnedAddress fetches an address and verifies it belongs to the acting user.
func (srv *addressService) loadOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
	}

	return address, nil
}

func addressFromInput(userID uuid.UUID, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		UserID:     userID,
		Label:      input.Label,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}
}
