package service

import "context"

// OrderEvent is published on order lifecycle changes for downstream
// consumers (fulfilment, analytics).
type OrderEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing.
	Type         string `json:"type"`                 // order.created, order.paid, order.cancelled.
	OrderID      string `json:"order_id"`
	UserID       string `json:"user_id"`
	Total        int64  `json:"total"`
	Status       string `json:"status"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// Order event types.
const (
	OrderEventCreated   = "order.created"
	OrderEventPaid      = "order.paid"
	OrderEventCancelled = "order.cancelled"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
