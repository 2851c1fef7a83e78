package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateShareQR generates a QR code pointing at a public profile or
	// poem URL so readers can share it offline.
	GenerateShareQR(url string) ([]byte, error)
}
