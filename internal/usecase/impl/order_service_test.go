package impl

import (
	"context"
	"strings"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockOrderEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockOrderEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	listingID := uuid.New()

	listing := &entity.Listing{
		ID:       listingID,
		SellerID: sellerID,
		Title:    "Mechanical keyboard",
		Price:    100,
		Type:     entity.ListingPhysical,
		Stock:    5,
		Active:   true,
	}
	buyerWallet := &entity.Wallet{ID: uuid.New(), UserID: buyerID, Balance: 500}
	sellerWallet := &entity.Wallet{ID: uuid.New(), UserID: sellerID}

	var paymentTx *entity.Transaction
	var notification *entity.Notification

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(listing, nil)
			mockListingRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Listing")).
				Run(func(ctx context.Context, updated *entity.Listing) {
					assert.Equal(t, 3, updated.Stock)
				}).
				Return(nil)

			mockWalletRepo.EXPECT().FindByUserID(ctx, buyerID).Return(buyerWallet, nil)
			mockWalletRepo.EXPECT().FindByUserID(ctx, sellerID).Return(sellerWallet, nil)
			mockWalletRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Wallet")).
				Return(nil).
				Times(2)
			mockWalletRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, tx *entity.Transaction) {
					paymentTx = tx
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, created *entity.Notification) {
					notification = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		BuyerID:   buyerID,
		ListingID: listingID,
		Quantity:  2,
	})

	require.NoError(t, err)
	require.NotNil(t, order)

	// Money math: total 200, fee 5% = 10, buyer charged 210.
	assert.InDelta(t, 200.0, order.TotalAmount, 1e-9)
	assert.InDelta(t, 10.0, order.ServiceFee, 1e-9)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.EscrowHeld, order.EscrowStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ZEE-"))

	assert.InDelta(t, 290.0, buyerWallet.Balance, 1e-9)
	assert.InDelta(t, 190.0, sellerWallet.PendingBalance, 1e-9)

	require.NotNil(t, paymentTx)
	assert.Equal(t, entity.TxOrderPayment, paymentTx.Type)
	assert.InDelta(t, -210.0, paymentTx.Amount, 1e-9)
	assert.Equal(t, entity.TxCompleted, paymentTx.Status)
	assert.Equal(t, "PAY-"+order.OrderNumber, paymentTx.Reference)

	require.NotNil(t, notification)
	assert.Equal(t, sellerID, notification.UserID)
	assert.Equal(t, entity.NotificationOrderCreated, notification.Type)
}

func TestOrderService_CreateOrder_OwnListing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(&entity.Listing{
				ID:       listingID,
				SellerID: buyerID,
				Active:   true,
			}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		BuyerID:   buyerID,
		ListingID: listingID,
		Quantity:  1,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOwnListing)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(&entity.Listing{
				ID:       listingID,
				SellerID: uuid.New(),
				Type:     entity.ListingPhysical,
				Stock:    1,
				Active:   true,
			}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		BuyerID:   uuid.New(),
		ListingID: listingID,
		Quantity:  3,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_CreateOrder_InsufficientBalance(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockListingRepo.EXPECT().FindByID(ctx, listingID).Return(&entity.Listing{
				ID:       listingID,
				SellerID: uuid.New(),
				Price:    100,
				Type:     entity.ListingDigital,
				Active:   true,
			}, nil)

			// 100 + 5 fee = 105 needed, only 100 available.
			mockWalletRepo.EXPECT().FindByUserID(ctx, buyerID).Return(&entity.Wallet{
				ID:      uuid.New(),
				UserID:  buyerID,
				Balance: 100,
			}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		BuyerID:   buyerID,
		ListingID: listingID,
		Quantity:  1,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

// A buyer may only confirm completion. Any other status request is refused
// before anything is written, so no update and no notification happen.
func TestOrderService_UpdateStatus_BuyerNonCompletedRefused(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	orderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			// Only the lookup is expected. Update and notification creation
			// must not be called; the mocks would fail the test if they were.
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
				ID:       orderID,
				BuyerID:  buyerID,
				SellerID: uuid.New(),
				Status:   entity.OrderPending,
			}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:    orderID,
		CallerID:   buyerID,
		CallerRole: entity.RoleBuyer,
		Status:     "SHIPPED",
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrBuyerStatusNotAllowed)
}

func TestOrderService_UpdateStatus_BuyerCompletedReleasesEscrow(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:           orderID,
		OrderNumber:  "ZEE-TEST-0001",
		BuyerID:      buyerID,
		SellerID:     sellerID,
		TotalAmount:  200,
		ServiceFee:   10,
		Status:       entity.OrderDelivered,
		EscrowStatus: entity.EscrowHeld,
	}
	sellerWallet := &entity.Wallet{ID: uuid.New(), UserID: sellerID, Balance: 50, PendingBalance: 190}
	buyerWallet := &entity.Wallet{ID: uuid.New(), UserID: buyerID, Balance: 290}

	var releaseTx *entity.Transaction
	var notification *entity.Notification

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
			mockOrderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			mockWalletRepo.EXPECT().FindByUserID(ctx, sellerID).Return(sellerWallet, nil)
			mockWalletRepo.EXPECT().FindByUserID(ctx, buyerID).Return(buyerWallet, nil)
			mockWalletRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Wallet")).
				Return(nil).
				Times(2)
			mockWalletRepo.EXPECT().
				CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, tx *entity.Transaction) {
					releaseTx = tx
				}).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, created *entity.Notification) {
					notification = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:    orderID,
		CallerID:   buyerID,
		CallerRole: entity.RoleBuyer,
		Status:     "COMPLETED",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, updated.Status)
	assert.Equal(t, entity.EscrowReleased, updated.EscrowStatus)
	assert.NotNil(t, updated.CompletedAt)

	// Seller share 190 moves from pending to spendable and lifetime earnings.
	assert.InDelta(t, 0.0, sellerWallet.PendingBalance, 1e-9)
	assert.InDelta(t, 240.0, sellerWallet.Balance, 1e-9)
	assert.InDelta(t, 190.0, sellerWallet.TotalEarned, 1e-9)

	// Buyer lifetime spend records the full charge including the fee.
	assert.InDelta(t, 210.0, buyerWallet.TotalSpent, 1e-9)

	require.NotNil(t, releaseTx)
	assert.Equal(t, entity.TxEscrowRelease, releaseTx.Type)
	assert.InDelta(t, 190.0, releaseTx.Amount, 1e-9)
	assert.Equal(t, "REL-ZEE-TEST-0001", releaseTx.Reference)

	require.NotNil(t, notification)
	assert.Equal(t, sellerID, notification.UserID)
}

func TestOrderService_UpdateStatus_SellerCompletedDoesNotReleaseEscrow(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:           orderID,
		OrderNumber:  "ZEE-TEST-0002",
		BuyerID:      buyerID,
		SellerID:     sellerID,
		TotalAmount:  200,
		ServiceFee:   10,
		Status:       entity.OrderDelivered,
		EscrowStatus: entity.EscrowHeld,
	}

	var notification *entity.Notification

	// No WalletRepo expectation: any wallet access fails the test.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
			mockOrderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, created *entity.Notification) {
					notification = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:    orderID,
		CallerID:   sellerID,
		CallerRole: entity.RoleSeller,
		Status:     "COMPLETED",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	// The held funds stay put until the buyer confirms.
	assert.Equal(t, entity.EscrowHeld, updated.EscrowStatus)

	require.NotNil(t, notification)
	assert.Equal(t, buyerID, notification.UserID)
}

func TestOrderService_UpdateStatus_SellerShipped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	var notification *entity.Notification

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
				ID:           orderID,
				OrderNumber:  "ZEE-TEST-0002",
				BuyerID:      buyerID,
				SellerID:     sellerID,
				Status:       entity.OrderPending,
				EscrowStatus: entity.EscrowHeld,
			}, nil)
			mockOrderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, created *entity.Notification) {
					notification = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:        orderID,
		CallerID:       sellerID,
		CallerRole:     entity.RoleSeller,
		Status:         "shipped",
		TrackingNumber: "TRK-42",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, updated.Status)
	assert.NotNil(t, updated.ShippedAt)
	assert.Equal(t, "TRK-42", updated.TrackingNumber)
	assert.Equal(t, entity.EscrowHeld, updated.EscrowStatus)

	require.NotNil(t, notification)
	assert.Equal(t, buyerID, notification.UserID)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateStatus(context.Background(), &usecase.UpdateOrderStatusInput{
		OrderID:    uuid.New(),
		CallerID:   uuid.New(),
		CallerRole: entity.RoleSeller,
		Status:     "TELEPORTED",
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_GetOrder_StrangerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
		ID:       orderID,
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
	}, nil)

	order, err := fx.service.GetOrder(ctx, uuid.New(), entity.RoleBuyer, orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}

func TestOrderService_GetOrder_AdminAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
		ID:       orderID,
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
	}, nil)

	order, err := fx.service.GetOrder(ctx, uuid.New(), entity.RoleAdmin, orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_Dispute_NotifiesCounterparty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	var notification *entity.Notification

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
				ID:          orderID,
				OrderNumber: "ZEE-TEST-0003",
				BuyerID:     buyerID,
				SellerID:    sellerID,
				Status:      entity.OrderShipped,
			}, nil)
			mockOrderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, created *entity.Notification) {
					notification = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.Dispute(ctx, &usecase.DisputeOrderInput{
		OrderID:  orderID,
		CallerID: buyerID,
		Reason:   "item never arrived",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderDisputed, updated.Status)
	assert.Equal(t, "item never arrived", updated.DisputeReason)
	assert.NotNil(t, updated.DisputedAt)

	require.NotNil(t, notification)
	assert.Equal(t, sellerID, notification.UserID)
}
