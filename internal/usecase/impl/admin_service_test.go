package impl

import (
	"context"
	"testing"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	mockRepo "zeemart/internal/mocks/repository"
	mockSvc "zeemart/internal/mocks/service"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service    usecase.AdminUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	orderRepo  *mockRepo.MockOrderRepository
	pushSender *mockSvc.MockPushSender
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)

	svc := NewAdminService(AdminServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		OrderRepo:  orderRepo,
		PushSender: pushSender,
		Logger:     newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:    svc,
		txManager:  txManager,
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		pushSender: pushSender,
	}
}

func TestAdminService_Dashboard_AggregatesCounters(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Count(ctx).Return(120, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleSeller).Return(30, nil)
	fx.orderRepo.EXPECT().Count(ctx).Return(450, nil)
	fx.orderRepo.EXPECT().CountByStatus(ctx, entity.OrderDisputed).Return(4, nil)
	fx.orderRepo.EXPECT().Totals(ctx).Return(&repository.MarketplaceTotals{
		GrossVolume: 98000,
		FeeRevenue:  4900,
	}, nil)

	stats, err := fx.service.Dashboard(ctx)

	require.NoError(t, err)
	assert.EqualValues(t, 120, stats.TotalUsers)
	assert.EqualValues(t, 30, stats.TotalSellers)
	assert.EqualValues(t, 450, stats.TotalOrders)
	assert.EqualValues(t, 4, stats.DisputedOrders)
	assert.InDelta(t, 98000.0, stats.GrossVolume, 1e-9)
	assert.InDelta(t, 4900.0, stats.FeeRevenue, 1e-9)
}

func TestAdminService_ListDisputes_FiltersByStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListOrdersOptions")).
		Run(func(ctx context.Context, opts repository.ListOrdersOptions) {
			require.NotNil(t, opts.Status)
			assert.Equal(t, entity.OrderDisputed, *opts.Status)
		}).
		Return([]*entity.Order{}, 0, nil)

	_, err := fx.service.ListDisputes(ctx, 20, 0)

	require.NoError(t, err)
}

func TestAdminService_BanUser_SetsFlagAndReason(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, Role: entity.RoleBuyer},
	}, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.True(t, profile.IsBanned)
			assert.Equal(t, "chargeback fraud", profile.BannedReason)
		}).
		Return(nil)

	err := fx.service.BanUser(ctx, &usecase.BanUserInput{
		UserID: userID,
		Reason: "chargeback fraud",
	})

	assert.NoError(t, err)
}

func TestAdminService_UnbanUser_ClearsReason(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID: userID,
		Profile: &entity.Profile{
			UserID:       userID,
			IsBanned:     true,
			BannedReason: "chargeback fraud",
		},
	}, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.False(t, profile.IsBanned)
			assert.Empty(t, profile.BannedReason)
		}).
		Return(nil)

	err := fx.service.UnbanUser(ctx, userID)

	assert.NoError(t, err)
}

func TestAdminService_ReviewVerification_Approve(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	var notification *entity.Notification

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
				ID: userID,
				Profile: &entity.Profile{
					UserID:             userID,
					Role:               entity.RoleSeller,
					VerificationStatus: entity.VerificationPending,
					DeviceToken:        "fcm-token-123",
				},
			}, nil)
			mockUserRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, created *entity.Notification) {
					notification = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.pushSender.EXPECT().
		Send(ctx, "fcm-token-123", "Verification approved", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	profile, err := fx.service.ReviewVerification(ctx, &usecase.ReviewVerificationInput{
		UserID:  userID,
		Approve: true,
		Details: "documents check out",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationApproved, profile.VerificationStatus)
	assert.Empty(t, profile.RejectionReason)
	assert.NotNil(t, profile.ReviewedAt)
	assert.Equal(t, "documents check out", profile.VerificationNotes)

	require.NotNil(t, notification)
	assert.Equal(t, userID, notification.UserID)
	assert.Equal(t, entity.NotificationVerification, notification.Type)
}

func TestAdminService_ReviewVerification_RejectRequiresReason(t *testing.T) {
	fx := createTestAdminService(t)

	profile, err := fx.service.ReviewVerification(context.Background(), &usecase.ReviewVerificationInput{
		UserID:  uuid.New(),
		Approve: false,
	})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_ReviewVerification_Reject(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			// No device token, so no push is attempted.
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
				ID: userID,
				Profile: &entity.Profile{
					UserID:             userID,
					Role:               entity.RoleSeller,
					VerificationStatus: entity.VerificationPending,
				},
			}, nil)
			mockUserRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.ReviewVerification(ctx, &usecase.ReviewVerificationInput{
		UserID:  userID,
		Approve: false,
		Reason:  "tax ID does not match",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationRejected, profile.VerificationStatus)
	assert.Equal(t, "tax ID does not match", profile.RejectionReason)
}

func TestAdminService_ListVerifications_DefaultsToPending(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListUsersOptions")).
		Run(func(ctx context.Context, opts repository.ListUsersOptions) {
			require.NotNil(t, opts.Role)
			assert.Equal(t, entity.RoleSeller, *opts.Role)
			require.NotNil(t, opts.VerificationStatus)
			assert.Equal(t, entity.VerificationPending, *opts.VerificationStatus)
		}).
		Return([]*entity.User{}, 0, nil)

	_, err := fx.service.ListVerifications(ctx, "", 20, 0)

	require.NoError(t, err)
}
