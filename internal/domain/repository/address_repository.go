package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-book operations.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUserID retrieves all addresses for a user.
	FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets the default flag on every address of the user.
	// Combined with UpdateAddress inside one transaction this keeps the
	// one-default-per-user invariant.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
