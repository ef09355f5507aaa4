package impl

import (
	"context"
	"strings"
	"testing"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/domain/service"
	mockRepo "zeemart/internal/mocks/repository"
	mockSvc "zeemart/internal/mocks/service"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// walletServiceFixtures holds all test dependencies for wallet service tests.
type walletServiceFixtures struct {
	service    usecase.WalletUsecase
	txManager  *mockRepo.MockTransactionManager
	walletRepo *mockRepo.MockWalletRepository
	provider   *mockSvc.MockPaymentProvider
	qrGen      *mockSvc.MockQRCodeGenerator
}

func createTestWalletService(t *testing.T) walletServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	walletRepo := mockRepo.NewMockWalletRepository(t)
	provider := mockSvc.NewMockPaymentProvider(t)
	qrGen := mockSvc.NewMockQRCodeGenerator(t)

	svc := NewWalletService(WalletServiceParams{
		TxManager:  txManager,
		WalletRepo: walletRepo,
		Provider:   provider,
		QRGen:      qrGen,
		Config:     newPaymentTestConfig(1),
		Logger:     newDiscardLogger(),
	})

	return walletServiceFixtures{
		service:    svc,
		txManager:  txManager,
		walletRepo: walletRepo,
		provider:   provider,
		qrGen:      qrGen,
	}
}

func TestWalletService_GetWallet_ProvisionsMissingWallet(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.walletRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrWalletNotFound)
	fx.walletRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Wallet")).
		Run(func(ctx context.Context, wallet *entity.Wallet) {
			wallet.ID = uuid.New()
		}).
		Return(nil)

	wallet, err := fx.service.GetWallet(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.Zero(t, wallet.Balance)
}

func TestWalletService_Deposit_BelowMinimum(t *testing.T) {
	fx := createTestWalletService(t)

	output, err := fx.service.Deposit(context.Background(), &usecase.DepositInput{
		UserID: uuid.New(),
		Amount: 0.5,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestWalletService_Deposit_Success(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	wallet := &entity.Wallet{ID: uuid.New(), UserID: userID, Balance: 10}

	fx.walletRepo.EXPECT().FindByUserID(ctx, userID).Return(wallet, nil)

	fx.provider.EXPECT().
		CreateCheckout(ctx, mock.AnythingOfType("string"), 50.0).
		RunAndReturn(func(ctx context.Context, reference string, amount float64) (*service.CheckoutSession, error) {
			return &service.CheckoutSession{
				Reference:   reference,
				CheckoutURL: "https://pay.example.test/checkout/" + reference,
				Amount:      amount,
			}, nil
		})

	var pendingTx *entity.Transaction
	fx.walletRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, tx *entity.Transaction) {
			pendingTx = tx
		}).
		Return(nil)

	fx.qrGen.EXPECT().
		GeneratePNG(mock.AnythingOfType("string")).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	output, err := fx.service.Deposit(ctx, &usecase.DepositInput{UserID: userID, Amount: 50})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.Reference, "DEP-"))
	assert.Contains(t, output.CheckoutURL, output.Reference)
	assert.NotEmpty(t, output.QRCodePNG)

	require.NotNil(t, pendingTx)
	assert.Equal(t, entity.TxDeposit, pendingTx.Type)
	assert.Equal(t, entity.TxPending, pendingTx.Status)
	assert.Equal(t, output.Reference, pendingTx.Reference)
	// The balance does not move until the deposit is confirmed.
	assert.InDelta(t, 10.0, wallet.Balance, 1e-9)
}

func TestWalletService_ConfirmDeposit_Success(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	wallet := &entity.Wallet{ID: walletID, UserID: userID, Balance: 10}
	pending := &entity.Transaction{
		ID:        uuid.New(),
		WalletID:  walletID,
		Type:      entity.TxDeposit,
		Amount:    50,
		Status:    entity.TxPending,
		Reference: "DEP-1-abc",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockWalletRepo.EXPECT().FindTransactionByReference(ctx, "DEP-1-abc").Return(pending, nil)
			mockWalletRepo.EXPECT().FindByUserID(ctx, userID).Return(wallet, nil)
			mockWalletRepo.EXPECT().UpdateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
			mockWalletRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Wallet")).Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, notification *entity.Notification) {
					assert.Equal(t, userID, notification.UserID)
					assert.Equal(t, entity.NotificationWallet, notification.Type)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	confirmed, err := fx.service.ConfirmDeposit(ctx, &usecase.ConfirmDepositInput{
		UserID:    userID,
		Reference: "DEP-1-abc",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TxCompleted, confirmed.Status)
	assert.InDelta(t, 60.0, wallet.Balance, 1e-9)
	assert.InDelta(t, 10.0, confirmed.BalanceBefore, 1e-9)
	assert.InDelta(t, 60.0, confirmed.BalanceAfter, 1e-9)
}

func TestWalletService_ConfirmDeposit_AlreadySettled(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockWalletRepo.EXPECT().FindTransactionByReference(ctx, "DEP-1-abc").Return(&entity.Transaction{
				WalletID:  walletID,
				Status:    entity.TxCompleted,
				Reference: "DEP-1-abc",
			}, nil)
			mockWalletRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Wallet{
				ID:     walletID,
				UserID: userID,
			}, nil)

			return fn(mockFactory)
		})

	confirmed, err := fx.service.ConfirmDeposit(ctx, &usecase.ConfirmDepositInput{
		UserID:    userID,
		Reference: "DEP-1-abc",
	})

	assert.Nil(t, confirmed)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestWalletService_ConfirmDeposit_ForeignReference(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			// The pending deposit belongs to some other wallet.
			mockWalletRepo.EXPECT().FindTransactionByReference(ctx, "DEP-1-abc").Return(&entity.Transaction{
				WalletID:  uuid.New(),
				Status:    entity.TxPending,
				Reference: "DEP-1-abc",
			}, nil)
			mockWalletRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Wallet{
				ID:     uuid.New(),
				UserID: userID,
			}, nil)

			return fn(mockFactory)
		})

	confirmed, err := fx.service.ConfirmDeposit(ctx, &usecase.ConfirmDepositInput{
		UserID:    userID,
		Reference: "DEP-1-abc",
	})

	assert.Nil(t, confirmed)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
}

func TestWalletService_ListTransactions_NormalizesPaging(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	wallet := &entity.Wallet{ID: uuid.New(), UserID: userID}

	fx.walletRepo.EXPECT().FindByUserID(ctx, userID).Return(wallet, nil)
	fx.walletRepo.EXPECT().
		ListTransactions(ctx, wallet.ID, 20, 0).
		Return([]*entity.Transaction{}, 0, nil)

	page, err := fx.service.ListTransactions(ctx, &usecase.ListTransactionsInput{
		UserID: userID,
		Limit:  0,
		Offset: -5,
	})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
