package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// SubmitVerificationInput carries the seller KYC submission.
type SubmitVerificationInput struct {
	UserID          uuid.UUID
	BusinessName    string
	BusinessAddress string
	LegalName       string
	TaxID           string
	DocumentKeys    []string
}

// VerificationUsecase defines the interface for seller verification
// submissions. Review happens on the admin side.
type VerificationUsecase interface {
	// Submit stores the business/legal fields, moves the profile to pending
	// and stamps submittedAt.
	Submit(ctx context.Context, input *SubmitVerificationInput) (*entity.Profile, error)
	// Status returns the caller's current verification state.
	Status(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
