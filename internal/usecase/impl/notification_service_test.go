package impl

import (
	"context"
	"testing"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	mockRepo "zeemart/internal/mocks/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository, *mockRepo.MockUserRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		Logger:           newDiscardLogger(),
	})

	return svc, notificationRepo, userRepo
}

func TestNotificationService_List_ReturnsUnreadCount(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationOrderStatus},
	}

	notificationRepo.EXPECT().ListByUser(ctx, userID, 20, 0).Return(items, 7, nil)
	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(3, nil)

	page, err := svc.List(ctx, &usecase.ListNotificationsInput{UserID: userID})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.EqualValues(t, 7, page.Total)
	assert.EqualValues(t, 3, page.Unread)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{
		ID:     notificationID,
		UserID: userID,
	}, nil)
	notificationRepo.EXPECT().MarkRead(ctx, notificationID).Return(nil)

	err := svc.MarkRead(ctx, userID, notificationID)

	assert.NoError(t, err)
}

func TestNotificationService_MarkRead_NotOwner(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{
		ID:     notificationID,
		UserID: uuid.New(),
	}, nil)

	err := svc.MarkRead(ctx, uuid.New(), notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_RegisterDevice_StoresToken(t *testing.T) {
	svc, _, userRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, Role: entity.RoleBuyer},
	}, nil)
	userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, "fcm-token-123", profile.DeviceToken)
		}).
		Return(nil)

	err := svc.RegisterDevice(ctx, userID, "fcm-token-123")

	assert.NoError(t, err)
}
