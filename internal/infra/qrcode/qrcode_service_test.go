package qrcode

import (
	"testing"

	"zeemart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePNG(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}}
	service := NewQRCodeService(cfg)

	qrBytes, err := service.GeneratePNG("https://pay.zeemart.test/checkout/ZEE-ABC123")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(nil)

	qrBytes, err := service.GeneratePNG("hello")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.level}}
			service := NewQRCodeService(cfg)

			qrBytes, err := service.GeneratePNG("payload")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
