package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is a placed order awaiting payment.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid is an order with a verified payment.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusShipped is a dispatched order.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered is a terminal, fulfilled order.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is a terminal, abandoned order. Cancelling restocks items.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CanTransitionTo enforces the forward-only status machine:
// pending→paid→shipped→delivered, with cancellation allowed from any
// non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return false
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusPaid || next == OrderStatusCancelled
	case OrderStatusPaid:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered || next == OrderStatusCancelled
	default:
		return false
	}
}

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem is one line of an order. Name and unit price are copied from the
// product at checkout so later catalog edits do not rewrite history.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	UnitPrice int64
	Quantity  int
}

// Subtotal is the line total in the smallest currency unit.
func (i *OrderItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Order is a placed checkout. Orders are never hard-deleted in normal
// operation; cancellation is the soft terminal state. The admin hard-delete
// endpoint exists for operational cleanup only.
type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID // Always resolvable; legacy orphans are re-linked to the guest user.
	Items          []*OrderItem
	Subtotal       int64 // Sum of line subtotals before discount.
	Discount       int64 // Applied coupon discount.
	Total          int64 // Subtotal - Discount.
	CouponCode     string
	ReferralCode   string // Influencer attribution, empty when organic.
	Status         OrderStatus
	AddressID      *uuid.UUID // Shipping address snapshot reference.
	PaymentOrderID string     // Provider order id minted at payment start.
	PaymentID      string     // Provider payment id recorded on verification.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
