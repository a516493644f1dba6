package service

// QRCodeService generates QR code images for public store links, attached to
// the submission acknowledgment so a freshly registered store can be shared
// immediately.
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code pointing at the store's public URL.
	GenerateStoreQR(storeURL string) ([]byte, error)
}
