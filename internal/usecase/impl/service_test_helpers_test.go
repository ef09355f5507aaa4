package impl

import (
	"io"
	"log/slog"

	"zeemart/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthTestConfig(minPasswordLength int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MinPasswordLength: minPasswordLength,
		},
	}
}

func newPaymentTestConfig(minDeposit float64) *config.Config {
	return &config.Config{
		Payment: &config.PaymentConfig{
			CheckoutBaseURL: "https://pay.example.test/checkout",
			MinDeposit:      minDeposit,
		},
	}
}
