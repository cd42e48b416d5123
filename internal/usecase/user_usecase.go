// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a storefront customer.
type RegisterCustomerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string
	Password string `validate:"required"`
}

// RegisterDoctorInput defines the data required to register a doctor-portal account.
type RegisterDoctorInput struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Phone          string
	Password       string `validate:"required"`
	Specialization string `validate:"required"`
	LicenseNumber  string `validate:"required"`
}

// RegisterInfluencerInput defines the data required to register an influencer-portal account.
type RegisterInfluencerInput struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Phone          string
	Password       string `validate:"required"`
	ReferralCode   string
	CommissionRate float64 `validate:"gte=0,lte=1"`
}

// RegisterAdminInput defines the data required to register a dashboard administrator.
// Only super admins may call the operation that consumes it.
type RegisterAdminInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Super    bool
}

// LoginInput defines the data required for a user to log in.
// UserAgent and IP are captured for the session record.
type LoginInput struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	UserAgent string
	IP        string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

// LogoutInput defines the data required to log out a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the new access token after a successful refresh.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account and authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)
	RegisterDoctor(ctx context.Context, input *RegisterDoctorInput) (*RegisterOutput, error)
	RegisterInfluencer(ctx context.Context, input *RegisterInfluencerInput) (*RegisterOutput, error)
	RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
