// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CouponInput defines the data required to create or update a coupon.
type CouponInput struct {
	Code          string            `validate:"required"`
	Type          entity.CouponType `validate:"required"`
	Value         int64             `validate:"gt=0"`
	MinOrderValue int64
	MaxDiscount   int64
	ValidFrom     time.Time
	ValidUntil    time.Time
	MaxUses       int
	Active        bool
}

// ValidateCouponInput defines the data required to check a coupon against an order amount.
type ValidateCouponInput struct {
	Code        string `validate:"required"`
	OrderAmount int64  `validate:"gt=0"`
}

// --- Output DTOs ---

// ValidateCouponOutput reports whether the coupon applies and the discount it yields.
type ValidateCouponOutput struct {
	Valid    bool
	Discount int64
	State    entity.CouponState
	Reason   string // Human-readable reason when Valid is false.
}

// CouponUsecase defines the interface for coupon operations.
// Redemption itself happens inside the checkout transaction; Validate is the
// read-only pre-check the storefront cart calls.
type CouponUsecase interface {
	ListCoupons(ctx context.Context, limit, offset int) ([]*entity.Coupon, error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	CreateCoupon(ctx context.Context, input *CouponInput) (*entity.Coupon, error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, input *CouponInput) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	ValidateCoupon(ctx context.Context, input *ValidateCouponInput) (*ValidateCouponOutput, error)
}
