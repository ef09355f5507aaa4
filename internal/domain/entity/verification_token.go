package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPTTL is how long an issued one-time password stays valid.
const OTPTTL = 10 * time.Minute

// VerificationToken is a single-use OTP record. At most one live token
// exists per identifier; issuing a new one supersedes any prior token.
type VerificationToken struct {
	ID         uuid.UUID
	Identifier string // Email or phone number the code was sent to.
	Token      string // 6-digit numeric code.
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
