package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "zeemart/internal/delivery/context"
	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the business and legal identity fields, resets the status
// to pending and stamps submittedAt for the admin review queue.
func (srv *verificationService) Submit(ctx context.Context, input *usecase.SubmitVerificationInput) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Profile == nil {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile missing for user")
	}

	now := time.Now()
	profile := user.Profile
	profile.BusinessName = input.BusinessName
	profile.BusinessAddress = input.BusinessAddress
	profile.LegalName = input.LegalName
	profile.TaxID = input.TaxID
	profile.DocumentKeys = input.DocumentKeys
	profile.VerificationStatus = entity.VerificationPending
	profile.RejectionReason = ""
	profile.SubmittedAt = &now
	profile.ReviewedAt = nil

	if err := srv.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to store verification submission")
	}

	srv.log(ctx).Info("Verification submitted", slog.Any("userID", input.UserID))

	return profile, nil
}

// Status returns the caller's verification state.
func (srv *verificationService) Status(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Profile == nil {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile missing for user")
	}

	return user.Profile, nil
}
