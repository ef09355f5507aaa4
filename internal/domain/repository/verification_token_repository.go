package repository

import (
	"context"

	"zeemart/internal/domain/entity"
	"zeemart/internal/errors"
)

var ErrVerificationTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository persists single-use OTP records.
type VerificationTokenRepository interface {
	// Replace deletes any existing token for the identifier and stores the
	// new one, so at most one live OTP exists per identifier.
	Replace(ctx context.Context, token *entity.VerificationToken) error
	FindByIdentifier(ctx context.Context, identifier string) (*entity.VerificationToken, error)
	DeleteByIdentifier(ctx context.Context, identifier string) error
}
