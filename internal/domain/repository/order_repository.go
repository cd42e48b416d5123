package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID       *uuid.UUID
	Status       entity.OrderStatus // Zero value means any status.
	ReferralCode string
	Limit        int
	Offset       int
}

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByPaymentOrderID resolves an order by the payment provider's order id.
	FindByPaymentOrderID(ctx context.Context, paymentOrderID string) (*entity.Order, error)

	// List retrieves orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Count returns the number of orders matching the filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// SumTotalsByReferralCode sums order totals attributed to a referral code,
	// excluding cancelled orders. Basis for influencer commission.
	SumTotalsByReferralCode(ctx context.Context, code string) (int64, error)

	// Create persists a new order with its items.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order (status, payment fields).
	Update(ctx context.Context, order *entity.Order) error

	// Delete hard-deletes an order. Kept for operational cleanup only;
	// normal flows cancel instead.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindOrphaned lists orders whose user record no longer resolves.
	FindOrphaned(ctx context.Context) ([]*entity.Order, error)

	// ReassignUser re-links an order to another user (guest-user repair).
	ReassignUser(ctx context.Context, orderID, userID uuid.UUID) error
}
