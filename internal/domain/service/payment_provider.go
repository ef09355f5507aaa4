package service

import "context"

// CheckoutSession is a pending deposit checkout created with the payment
// provider. Reference ties the provider session back to our ledger entry.
type CheckoutSession struct {
	Reference   string
	CheckoutURL string
	Amount      float64
}

// PaymentProvider creates checkout sessions for wallet deposits. The
// production processor is swapped for a mock in development.
type PaymentProvider interface {
	CreateCheckout(ctx context.Context, reference string, amount float64) (*CheckoutSession, error)
}
