// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines the data a user may change on their own account.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// UpdateDoctorProfileInput defines the doctor-specific fields a doctor may change.
type UpdateDoctorProfileInput struct {
	Specialization *string `json:"specialization,omitempty"`
}

// ListUsersInput narrows the admin user listing.
type ListUsersInput struct {
	Role   entity.Role
	Status entity.UserStatus
	Search string
	Limit  int
	Offset int
}

// --- Output DTOs ---

// ListUsersOutput returns one page of users plus the unpaginated total.
type ListUsersOutput struct {
	Users []*entity.User
	Total int64
}

// ProfileUsecase defines the interface for profile and account-administration operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UpdateDoctorProfile(ctx context.Context, userID uuid.UUID, input *UpdateDoctorProfileInput) (*entity.User, error)

	// Admin operations.
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	SetUserStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
}
