package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponExhausted is returned when a guarded redemption finds the coupon
	// outside its window or past its usage cap.
	ErrCouponExhausted = errors.New("coupon exhausted or outside validity window")
)

// CouponRepository defines coupon persistence operations.
type CouponRepository interface {
	// FindByID retrieves a coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindByCode retrieves a coupon by its code, case-insensitive.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// List retrieves all coupons, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Coupon, error)

	// Create persists a new coupon. Duplicate codes surface as a conflict.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update modifies an existing coupon.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// Delete removes a coupon by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Redeem atomically increments used_count with the validity window, active
	// flag and `used_count < max_uses` in the UPDATE predicate. Returns
	// ErrCouponExhausted when the guard does not hold, so concurrent checkouts
	// can never push the count past the cap.
	Redeem(ctx context.Context, code string) error
}
