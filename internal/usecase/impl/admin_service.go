package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zeemart/internal/delivery/context"
	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/domain/service"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	orderRepo  repository.OrderRepository
	pushSender service.PushSender
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	OrderRepo  repository.OrderRepository
	PushSender service.PushSender
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		orderRepo:  params.OrderRepo,
		pushSender: params.PushSender,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard collects marketplace-wide counters and money totals.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalSellers, err := srv.userRepo.CountByRole(ctx, entity.RoleSeller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sellers")
	}

	totalOrders, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	disputedOrders, err := srv.orderRepo.CountByStatus(ctx, entity.OrderDisputed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count disputed orders")
	}

	totals, err := srv.orderRepo.Totals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate order totals")
	}

	return &usecase.DashboardStats{
		TotalUsers:     totalUsers,
		TotalSellers:   totalSellers,
		TotalOrders:    totalOrders,
		DisputedOrders: disputedOrders,
		GrossVolume:    totals.GrossVolume,
		FeeRevenue:     totals.FeeRevenue,
	}, nil
}

// ListDisputes returns the disputed orders queue, newest first.
func (srv *adminService) ListDisputes(ctx context.Context, limit, offset int) (*usecase.OrderPage, error) {
	status := entity.OrderDisputed
	items, total, err := srv.orderRepo.List(ctx, repository.ListOrdersOptions{
		Status: &status,
		Limit:  normalizeLimit(limit),
		Offset: max(offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list disputes")
	}

	return &usecase.OrderPage{Items: items, Total: total}, nil
}

// ListUsers pages through users for the moderation console.
func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListManagedUsersInput) (*usecase.UserPage, error) {
	opts := repository.ListUsersOptions{
		Banned: input.Banned,
		Limit:  normalizeLimit(input.Limit),
		Offset: max(input.Offset, 0),
	}
	if input.Role != "" {
		role := entity.Role(strings.ToUpper(input.Role))
		opts.Role = &role
	}
	if input.VerificationStatus != "" {
		status := entity.VerificationStatus(strings.ToLower(input.VerificationStatus))
		opts.VerificationStatus = &status
	}

	items, total, err := srv.userRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserPage{Items: items, Total: total}, nil
}

// BanUser flags the account as banned with the given reason. Banned
// profiles are refused at login.
func (srv *adminService) BanUser(ctx context.Context, input *usecase.BanUserInput) error {
	if err := srv.setBanned(ctx, input.UserID, true, input.Reason); err != nil {
		return err
	}

	srv.log(ctx).Info("User banned", slog.Any("userID", input.UserID), slog.String("reason", input.Reason))

	return nil
}

// UnbanUser lifts a ban and clears the recorded reason.
func (srv *adminService) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	if err := srv.setBanned(ctx, userID, false, ""); err != nil {
		return err
	}

	srv.log(ctx).Info("User unbanned", slog.Any("userID", userID))

	return nil
}

func (srv *adminService) setBanned(ctx context.Context, userID uuid.UUID, banned bool, reason string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}
	if user.Profile == nil {
		return domainerrors.ErrUserNotFound.WrapMessage("profile missing for user")
	}

	user.Profile.IsBanned = banned
	user.Profile.BannedReason = reason

	if err := srv.userRepo.UpdateProfile(ctx, user.Profile); err != nil {
		return errors.Wrap(err, "failed to update ban state")
	}

	return nil
}

// ListVerifications pages through seller profiles in the given review state.
// Status defaults to pending, which is the review queue.
func (srv *adminService) ListVerifications(ctx context.Context, status string, limit, offset int) (*usecase.UserPage, error) {
	verificationStatus := entity.VerificationPending
	if status != "" {
		verificationStatus = entity.VerificationStatus(strings.ToLower(status))
	}

	role := entity.RoleSeller
	items, total, err := srv.userRepo.List(ctx, repository.ListUsersOptions{
		Role:               &role,
		VerificationStatus: &verificationStatus,
		Limit:              normalizeLimit(limit),
		Offset:             max(offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list verifications")
	}

	return &usecase.UserPage{Items: items, Total: total}, nil
}

// ReviewVerification resolves a pending submission. The status change and the
// notification to the seller commit in one transaction; push delivery happens
// afterwards, best effort.
func (srv *adminService) ReviewVerification(ctx context.Context, input *usecase.ReviewVerificationInput) (*entity.Profile, error) {
	if !input.Approve && input.Reason == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a rejection requires a reason")
	}

	var (
		profile     *entity.Profile
		deviceToken string
		title       string
		content     string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.Profile == nil {
			return domainerrors.ErrUserNotFound.WrapMessage("profile missing for user")
		}

		now := time.Now()
		profile = user.Profile
		profile.ReviewedAt = &now
		profile.VerificationNotes = input.Details

		if input.Approve {
			profile.VerificationStatus = entity.VerificationApproved
			profile.RejectionReason = ""
			title = "Verification approved"
			content = "Your seller verification has been approved. You can now create listings."
		} else {
			profile.VerificationStatus = entity.VerificationRejected
			profile.RejectionReason = input.Reason
			title = "Verification rejected"
			content = "Your seller verification was rejected: " + input.Reason
		}

		if err := repoFactory.UserRepo().UpdateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to store review outcome")
		}

		notification := &entity.Notification{
			UserID:  input.UserID,
			Type:    entity.NotificationVerification,
			Title:   title,
			Content: content,
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to notify seller")
		}

		deviceToken = profile.DeviceToken

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Verification reviewed",
		slog.Any("userID", input.UserID),
		slog.Bool("approved", input.Approve),
	)

	if deviceToken != "" {
		if err := srv.pushSender.Send(ctx, deviceToken, title, content, map[string]string{
			"type": string(entity.NotificationVerification),
		}); err != nil {
			srv.log(ctx).Warn("Failed to push verification outcome",
				slog.Any("userID", input.UserID),
				slog.Any("error", err),
			)
		}
	}

	return profile, nil
}
