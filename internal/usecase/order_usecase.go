// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutItemInput is one requested line of a checkout.
type CheckoutItemInput struct {
	ProductID uuid.UUID `validate:"required"`
	Quantity  int       `validate:"gt=0"`
}

// CheckoutInput defines the data required to place an order.
// Coupon and referral codes are optional.
type CheckoutInput struct {
	UserID       uuid.UUID
	Items        []*CheckoutItemInput `validate:"required,min=1,dive,required"`
	CouponCode   string
	ReferralCode string
	AddressID    *uuid.UUID
}

// ListOrdersInput narrows order listings.
type ListOrdersInput struct {
	UserID       *uuid.UUID
	Status       entity.OrderStatus
	ReferralCode string
	Limit        int
	Offset       int
}

// --- Output DTOs ---

// CheckoutOutput returns the placed order.
type CheckoutOutput struct {
	Order *entity.Order
}

// ListOrdersOutput returns one page of orders plus the unpaginated total.
type ListOrdersOutput struct {
	Orders []*entity.Order
	Total  int64
}

// EarningsOutput summarizes an influencer's attributed sales and commission.
// Amounts are in the smallest currency unit.
type EarningsOutput struct {
	ReferralCode    string
	AttributedTotal int64
	CommissionRate  float64
	Commission      int64
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// Checkout places an order: prices are read from the current catalog,
	// the optional coupon is validated and redeemed, stock is decremented
	// per line, all inside one transaction. Insufficient stock or an
	// unusable coupon fails the whole checkout with no partial mutation.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error)
	CountOrders(ctx context.Context, input *ListOrdersInput) (int64, error)

	// UpdateOrderStatus moves an order along pending→paid→shipped→delivered.
	// Cancelling restocks every line.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder hard-deletes an order. Operational cleanup only.
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	// GetInfluencerEarnings computes commission over orders attributed to the
	// influencer's referral code.
	GetInfluencerEarnings(ctx context.Context, influencerUserID uuid.UUID) (*EarningsOutput, error)

	// GetReferralQR renders a PNG QR code for the influencer's storefront link.
	GetReferralQR(ctx context.Context, influencerUserID uuid.UUID) ([]byte, error)
}
