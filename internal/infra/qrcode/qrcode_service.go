package qrcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateStoreQR renders the public store link as a PNG encoded into a
// base64 data URL, ready to persist on the store row.
func (s *qrcodeService) GenerateStoreQR(channelIdentifier, slug string) (*entity.StoreQRCode, error) {
	link := s.storeLink(channelIdentifier, slug)

	// Generate QR code
	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return &entity.StoreQRCode{
		Link: link,
		Data: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes),
	}, nil
}

// storeLink prefers the channel handle; stores without a public channel fall
// back to their slug under the marketplace base URL.
func (s *qrcodeService) storeLink(channelIdentifier, slug string) string {
	identifier := strings.TrimPrefix(strings.TrimSpace(channelIdentifier), "@")
	if identifier == "" {
		identifier = slug
	}

	return s.baseURL + "/" + identifier
}
