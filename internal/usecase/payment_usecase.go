// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartPaymentInput defines the data required to begin payment for an order.
type StartPaymentInput struct {
	OrderID uuid.UUID `validate:"required"`
}

// VerifyPaymentInput carries the provider's callback fields for signature verification.
type VerifyPaymentInput struct {
	PaymentOrderID string `validate:"required"`
	PaymentID      string `validate:"required"`
	Signature      string `validate:"required"`
}

// --- Output DTOs ---

// StartPaymentOutput returns the provider order the checkout widget needs.
type StartPaymentOutput struct {
	ProviderOrderID string
	Amount          int64
	Currency        string
}

// PaymentUsecase defines the interface for payment operations.
type PaymentUsecase interface {
	// StartPayment mints a provider order for a pending order and records the
	// provider order id on it.
	StartPayment(ctx context.Context, input *StartPaymentInput) (*StartPaymentOutput, error)

	// VerifyPayment checks the provider signature and, on success, marks the
	// order paid and records the payment id. A bad signature changes nothing.
	VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (*entity.Order, error)
}
