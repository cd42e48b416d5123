// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role   entity.Role       // Zero value means any role.
	Status entity.UserStatus // Zero value means any status.
	Search string            // Matches name or email, case-insensitive.
	Limit  int
	Offset int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with profiles and addresses.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByReferralCode resolves an influencer by their referral code.
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// List retrieves users matching the filter.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Count returns the number of users matching the filter.
	Count(ctx context.Context, filter UserFilter) (int64, error)

	// Create persists a new user entity with its profiles.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity and its profiles.
	Update(ctx context.Context, user *entity.User) error

	// Users are soft-disabled via Status; no Delete on purpose.
}
