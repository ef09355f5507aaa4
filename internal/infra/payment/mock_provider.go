// Package payment implements the PaymentProvider interface. Production
// would talk to a real processor; this mock builds checkout URLs locally
// and treats every checkout as payable.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"zeemart/config"
	"zeemart/internal/domain/service"
)

const defaultCheckoutBaseURL = "https://pay.zeemart.test/checkout"

type mockProvider struct {
	baseURL string
	logger  *slog.Logger
}

// NewMockProvider creates the development payment provider.
func NewMockProvider(cfg *config.Config, logger *slog.Logger) service.PaymentProvider {
	baseURL := defaultCheckoutBaseURL
	if cfg != nil && cfg.Payment != nil && cfg.Payment.CheckoutBaseURL != "" {
		baseURL = strings.TrimRight(cfg.Payment.CheckoutBaseURL, "/")
	}

	return &mockProvider{
		baseURL: baseURL,
		logger:  logger,
	}
}

// CreateCheckout returns a checkout session whose URL embeds the ledger
// reference, so confirming the reference settles the right deposit.
func (p *mockProvider) CreateCheckout(_ context.Context, reference string, amount float64) (*service.CheckoutSession, error) {
	session := &service.CheckoutSession{
		Reference:   reference,
		CheckoutURL: fmt.Sprintf("%s/%s", p.baseURL, reference),
		Amount:      amount,
	}

	p.logger.Info("[MockPayment] Checkout session created",
		slog.String("reference", reference),
		slog.Float64("amount", amount),
	)

	return session, nil
}
