// Package service declares interfaces for external collaborators consumed by
// the use case layer.
package service

import "bazaar/internal/domain/entity"

// QRCodeService generates the QR payload persisted on a store at approval time.
type QRCodeService interface {
	// GenerateStoreQR builds the canonical store link from the channel
	// identifier and slug and renders it as a QR image payload.
	GenerateStoreQR(channelIdentifier, slug string) (*entity.StoreQRCode, error)
}
