package impl

import (
	"context"
	"testing"
	"time"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	mockRepo "zeemart/internal/mocks/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestVerificationService(t *testing.T) (usecase.VerificationUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(VerificationServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func TestVerificationService_Submit_ResetsReviewState(t *testing.T) {
	svc, userRepo := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewedAt := time.Now().Add(-24 * time.Hour)

	// A resubmission after a rejection clears the earlier review outcome.
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID: userID,
		Profile: &entity.Profile{
			UserID:             userID,
			Role:               entity.RoleSeller,
			VerificationStatus: entity.VerificationRejected,
			RejectionReason:    "blurry documents",
			ReviewedAt:         &reviewedAt,
		},
	}, nil)
	userRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	profile, err := svc.Submit(ctx, &usecase.SubmitVerificationInput{
		UserID:          userID,
		BusinessName:    "Acme Prints",
		BusinessAddress: "1 Industry Way",
		LegalName:       "Acme Prints LLC",
		TaxID:           "TAX-42",
		DocumentKeys:    []string{userID.String() + "/business_license/doc.pdf"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationPending, profile.VerificationStatus)
	assert.Empty(t, profile.RejectionReason)
	assert.Nil(t, profile.ReviewedAt)
	assert.NotNil(t, profile.SubmittedAt)
	assert.Equal(t, "Acme Prints", profile.BusinessName)
	assert.Len(t, profile.DocumentKeys, 1)
}

func TestVerificationService_Status_UserNotFound(t *testing.T) {
	svc, userRepo := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	profile, err := svc.Status(ctx, userID)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
