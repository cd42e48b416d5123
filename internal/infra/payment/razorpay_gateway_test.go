package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"testing"

	"wellkart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentConfig() *config.Config {
	return &config.Config{
		Payment: &config.PaymentConfig{
			KeyID:     "rzp_test_key",
			KeySecret: "rzp_test_secret",
			Currency:  "INR",
		},
	}
}

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewRazorpayGateway_MissingCredentials(t *testing.T) {
	gateway, err := NewRazorpayGateway(&config.Config{}, slog.Default())
	assert.Error(t, err)
	assert.Nil(t, gateway)
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	gateway, err := NewRazorpayGateway(paymentConfig(), slog.Default())
	require.NoError(t, err)

	orderID := "order_Nxy123"
	paymentID := "pay_Nxy456"

	valid := signPayload("rzp_test_secret", orderID, paymentID)
	assert.True(t, gateway.VerifySignature(orderID, paymentID, valid))

	// Wrong secret produces a mismatch.
	forged := signPayload("some_other_secret", orderID, paymentID)
	assert.False(t, gateway.VerifySignature(orderID, paymentID, forged))

	// Tampered payment id fails too.
	assert.False(t, gateway.VerifySignature(orderID, "pay_other", valid))

	// Garbage signature never verifies.
	assert.False(t, gateway.VerifySignature(orderID, paymentID, "not-a-signature"))
}
