package service

import "context"

// PaymentOrder is the provider-side order minted before the checkout widget
// collects payment.
type PaymentOrder struct {
	ProviderOrderID string
	Amount          int64 // Smallest currency unit.
	Currency        string
}

// PaymentGateway abstracts the payment provider (Razorpay).
type PaymentGateway interface {
	// CreateOrder mints a provider order for the given amount and currency and
	// returns its id for client-side checkout.
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (*PaymentOrder, error)

	// VerifySignature recomputes the HMAC over "orderID|paymentID" with the
	// provider secret and compares it to the supplied signature.
	VerifySignature(orderID, paymentID, signature string) bool
}
