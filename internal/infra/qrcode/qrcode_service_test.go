package qrcode

import (
	"testing"

	"wellkart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
		},
		Storefront: &config.StorefrontConfig{
			BaseURL: "https://shop.example.com",
		},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "low"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "high"},
		{"Highest error correction", 256, "highest"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateReferralQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "medium"))

	qrBytes, err := service.GenerateReferralQR("WELL20")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateReferralQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, "medium"))

			qrBytes, err := service.GenerateReferralQR("WELL20")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateReferralQR_EscapesCode(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "medium"))

	// Codes with reserved characters must still render.
	qrBytes, err := service.GenerateReferralQR("CODE WITH&SPACES")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
