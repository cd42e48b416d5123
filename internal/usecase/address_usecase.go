// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddressInput defines the data required to create or replace an address.
type AddressInput struct {
	Label      string
	Line1      string `validate:"required"`
	Line2      string
	City       string `validate:"required"`
	State      string `validate:"required"`
	PostalCode string `validate:"required"`
	Country    string `validate:"required"`
	IsDefault  bool
}

// AddressUsecase defines the interface for address-book operations.
// Ownership is always checked against the acting user before any mutation.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// SetDefaultAddress switches the user's default transactionally:
	// every address is unset, then the chosen one is set.
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
