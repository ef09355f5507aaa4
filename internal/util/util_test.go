package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	num, err := NewOrderNumber(now)
	require.NoError(t, err)

	parts := strings.Split(num, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ZEE", parts[0])
	assert.Equal(t, strings.ToUpper(num), num)
	assert.GreaterOrEqual(t, len(parts[2]), 4)
	assert.NotContains(t, num, " ")
}

func TestNewOrderNumberUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)

	for range 100 {
		num, err := NewOrderNumber(now)
		require.NoError(t, err)
		assert.False(t, seen[num], "duplicate order number %s", num)
		seen[num] = true
	}
}

func TestNewOTP(t *testing.T) {
	for range 50 {
		otp, err := NewOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "bytes", bytes: 512, expected: "512 B"},
		{name: "kilobytes", bytes: 2048, expected: "2.0 KB"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}
