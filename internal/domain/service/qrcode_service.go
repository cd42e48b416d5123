package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateReferralQR renders a PNG QR code for an influencer's storefront
	// referral link.
	GenerateReferralQR(referralCode string) ([]byte, error)
}
