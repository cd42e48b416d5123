// Package qrcode renders referral QR codes for influencer storefront links.
package qrcode

import (
	"fmt"
	"net/url"

	"wellkart/config"
	"wellkart/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	storefrontBaseURL    string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	var level qrcode.RecoveryLevel
	switch levelName {
	case "low":
		level = qrcode.Low
	case "medium":
		level = qrcode.Medium
	case "high":
		level = qrcode.High
	case "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	baseURL := "http://localhost:3000"
	if cfg.Storefront != nil && cfg.Storefront.BaseURL != "" {
		baseURL = cfg.Storefront.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		storefrontBaseURL:    baseURL,
	}
}

// GenerateReferralQR renders a PNG QR code pointing at the storefront with the
// influencer's referral code attached.
func (s *qrcodeService) GenerateReferralQR(referralCode string) ([]byte, error) {
	link := fmt.Sprintf("%s/?ref=%s", s.storefrontBaseURL, url.QueryEscape(referralCode))

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
