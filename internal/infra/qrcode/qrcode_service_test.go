package qrcode

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://t.me", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService("https://t.me", 256, "M")

	qr, err := service.GenerateStoreQR("@handmadebysara", "sara-s-handmade-abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/handmadebysara", qr.Link)

	// Verify the payload is a PNG data URL
	require.True(t, strings.HasPrefix(qr.Data, "data:image/png;base64,"))
	pngBytes, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr.Data, "data:image/png;base64,"))
	require.NoError(t, err)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), pngBytes[0])
	assert.Equal(t, byte(0x50), pngBytes[1])
	assert.Equal(t, byte(0x4E), pngBytes[2])
	assert.Equal(t, byte(0x47), pngBytes[3])
}

func TestQRCodeService_GenerateStoreQR_SlugFallback(t *testing.T) {
	service := NewQRCodeService("https://t.me/", 256, "M")

	qr, err := service.GenerateStoreQR("", "sara-s-handmade-abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/sara-s-handmade-abc123", qr.Link)
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService("https://t.me", tt.size, "M")

			qr, err := service.GenerateStoreQR("@somechannel", "some-store-1")
			require.NoError(t, err)
			assert.NotEmpty(t, qr.Data)
		})
	}
}
