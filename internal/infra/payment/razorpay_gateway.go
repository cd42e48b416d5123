// Package payment implements the PaymentGateway service against Razorpay.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"wellkart/config"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/service"

	"github.com/pkg/errors"
	razorpay "github.com/razorpay/razorpay-go"
)

// razorpayGateway implements service.PaymentGateway using the Razorpay SDK.
type razorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	logger    *slog.Logger
}

// NewRazorpayGateway is the constructor for razorpayGateway.
func NewRazorpayGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.KeyID == "" || cfg.Payment.KeySecret == "" {
		return nil, errors.New("razorpay credentials must be provided")
	}

	return &razorpayGateway{
		client:    razorpay.NewClient(cfg.Payment.KeyID, cfg.Payment.KeySecret),
		keySecret: cfg.Payment.KeySecret,
		logger:    logger,
	}, nil
}

// CreateOrder mints a provider order for the given amount and currency.
func (g *razorpayGateway) CreateOrder(_ context.Context, amount int64, currency string, receipt string) (*service.PaymentOrder, error) {
	data := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		g.logger.Error("Razorpay order creation failed",
			slog.String("receipt", receipt),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrPaymentProvider.WrapMessage("order creation failed")
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, domainerrors.ErrPaymentProvider.WrapMessage("provider response missing order id")
	}

	g.logger.Info("Razorpay order created",
		slog.String("provider_order_id", orderID),
		slog.Int64("amount", amount),
	)

	return &service.PaymentOrder{
		ProviderOrderID: orderID,
		Amount:          amount,
		Currency:        currency,
	}, nil
}

// VerifySignature recomputes the HMAC-SHA256 over "orderID|paymentID" with the
// key secret and compares it to the supplied signature in constant time.
func (g *razorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
