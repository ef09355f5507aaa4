package impl

import (
	"context"
	"log/slog"

	deliverycontext "zeemart/internal/delivery/context"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List pages through the caller's notifications, newest first, and reports
// the unread count alongside.
func (srv *notificationService) List(ctx context.Context, input *usecase.ListNotificationsInput) (*usecase.NotificationPage, error) {
	items, total, err := srv.notificationRepo.ListByUser(ctx, input.UserID, normalizeLimit(input.Limit), max(input.Offset, 0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread, err := srv.notificationRepo.CountUnread(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationPage{Items: items, Total: total, Unread: unread}, nil
}

// MarkRead flags one notification as read. Only the owner may do so.
func (srv *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}
	if notification.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	srv.log(ctx).Debug("Notification marked read", slog.Any("notificationID", notificationID))

	return nil
}

// RegisterDevice stores the device token on the caller's profile so review
// and order notifications can be pushed to the device.
func (srv *notificationService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceToken string) error {
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

	user.Profile.DeviceToken = deviceToken
	if err := srv.userRepo.UpdateProfile(ctx, user.Profile); err != nil {
		return errors.Wrap(err, "failed to store device token")
	}

	srv.log(ctx).Info("Device registered for push", slog.Any("userID", userID))

	return nil
}
