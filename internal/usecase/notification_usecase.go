package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// ListNotificationsInput pages through the caller's notifications.
type ListNotificationsInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// NotificationPage is one page of notifications plus totals.
type NotificationPage struct {
	Items  []*entity.Notification
	Total  int64
	Unread int64
}

// NotificationUsecase defines the interface for notification business operations.
type NotificationUsecase interface {
	List(ctx context.Context, input *ListNotificationsInput) (*NotificationPage, error)
	// MarkRead flags one notification as read; only the owner may do so.
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error
	// RegisterDevice stores the caller's device token for push delivery.
	// An empty token unregisters the device.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceToken string) error
}
