package entity

import (
	"time"

	"github.com/google/uuid"
)

// CouponType selects how the discount value is interpreted.
type CouponType string

const (
	// CouponTypeFlat subtracts a fixed amount.
	CouponTypeFlat CouponType = "flat"
	// CouponTypePercent subtracts a percentage of the order amount, capped by MaxDiscount.
	CouponTypePercent CouponType = "percent"
)

// CouponState is derived from the active flag, validity window and usage
// count. It is never stored.
type CouponState string

const (
	// CouponStateDraft is a coupon whose window has not opened yet.
	CouponStateDraft CouponState = "draft"
	// CouponStateActive is a coupon that can currently be redeemed.
	CouponStateActive CouponState = "active"
	// CouponStateInactive is a coupon switched off by an admin.
	CouponStateInactive CouponState = "inactive"
	// CouponStateExpired is a coupon past its window or usage cap.
	CouponStateExpired CouponState = "expired"
)

// Coupon is a discount code with a validity window and usage cap.
// Invariant: UsedCount never exceeds MaxUses; redemption is a guarded
// conditional update, not a read-then-write.
type Coupon struct {
	ID            uuid.UUID
	Code          string // Unique, matched case-insensitively.
	Type          CouponType
	Value         int64 // Flat amount in paise, or percent (0-100).
	MinOrderValue int64 // Order subtotal required before the coupon applies.
	MaxDiscount   int64 // Cap for percent coupons; 0 means uncapped.
	ValidFrom     time.Time
	ValidUntil    time.Time
	MaxUses       int
	UsedCount     int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// State derives the lifecycle state at the given instant.
func (c *Coupon) State(now time.Time) CouponState {
	switch {
	case !c.Active:
		return CouponStateInactive
	case now.Before(c.ValidFrom):
		return CouponStateDraft
	case now.After(c.ValidUntil), c.MaxUses > 0 && c.UsedCount >= c.MaxUses:
		return CouponStateExpired
	default:
		return CouponStateActive
	}
}

// Redeemable reports whether the coupon can be applied to an order of the
// given subtotal at the given instant.
func (c *Coupon) Redeemable(now time.Time, orderAmount int64) bool {
	return c.State(now) == CouponStateActive && orderAmount >= c.MinOrderValue
}

// DiscountFor computes the discount for an order subtotal. The result never
// exceeds the order amount.
func (c *Coupon) DiscountFor(orderAmount int64) int64 {
	var discount int64

	switch c.Type {
	case CouponTypeFlat:
		discount = c.Value
	case CouponTypePercent:
		discount = orderAmount * c.Value / 100
		if c.MaxDiscount > 0 && discount > c.MaxDiscount {
			discount = c.MaxDiscount
		}
	}

	if discount > orderAmount {
		discount = orderAmount
	}

	return discount
}
