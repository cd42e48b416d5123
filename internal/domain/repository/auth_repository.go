package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"
)

// ErrAuthNotFound is returned when no credential matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines operations over login credentials.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider user id
	// (the email address for the "email" provider).
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// UpdateAuthentication updates an existing credential, e.g. on password change.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
