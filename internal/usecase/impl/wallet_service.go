package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zeemart/config"
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

const defaultMinDeposit = 1.0

// walletService implements the WalletUsecase interface.
type walletService struct {
	txManager  repository.TransactionManager
	walletRepo repository.WalletRepository
	provider   service.PaymentProvider
	qrGen      service.QRCodeGenerator
	minDeposit float64
	logger     *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	WalletRepo repository.WalletRepository
	Provider   service.PaymentProvider
	QRGen      service.QRCodeGenerator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	minDeposit := defaultMinDeposit
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.MinDeposit > 0 {
		minDeposit = params.Config.Payment.MinDeposit
	}

	return &walletService{
		txManager:  params.TxManager,
		walletRepo: params.WalletRepo,
		provider:   params.Provider,
		qrGen:      params.QRGen,
		minDeposit: minDeposit,
		logger:     params.Logger,
	}
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWallet returns the caller's wallet, provisioning an empty one for
// accounts predating the wallet table.
func (srv *walletService) GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := srv.walletRepo.FindByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, repository.ErrWalletNotFound) {
		return nil, errors.Wrap(err, "failed to find wallet")
	}

	wallet = &entity.Wallet{UserID: userID}
	if err := srv.walletRepo.Create(ctx, wallet); err != nil {
		return nil, errors.Wrap(err, "failed to provision wallet")
	}

	srv.log(ctx).Info("Wallet provisioned", slog.Any("userID", userID))

	return wallet, nil
}

// Deposit opens a checkout with the payment provider and records a PENDING
// ledger entry carrying the provider reference. The balance moves only when
// the deposit is confirmed.
func (srv *walletService) Deposit(ctx context.Context, input *usecase.DepositInput) (*usecase.DepositOutput, error) {
	if input.Amount < srv.minDeposit {
		return nil, domainerrors.ErrInvalidAmount
	}

	wallet, err := srv.GetWallet(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	reference := fmt.Sprintf("DEP-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])

	session, err := srv.provider.CreateCheckout(ctx, reference, input.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout")
	}

	depositTx := &entity.Transaction{
		WalletID:      wallet.ID,
		Type:          entity.TxDeposit,
		Amount:        input.Amount,
		Status:        entity.TxPending,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  wallet.Balance + input.Amount,
		Reference:     reference,
		Description:   fmt.Sprintf("Wallet deposit of %.2f", input.Amount),
	}
	if err := srv.walletRepo.CreateTransaction(ctx, depositTx); err != nil {
		return nil, errors.Wrap(err, "failed to record pending deposit")
	}

	qrPNG, err := srv.qrGen.GeneratePNG(session.CheckoutURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render checkout QR code")
	}

	srv.log(ctx).Info("Deposit checkout created",
		slog.Any("userID", input.UserID),
		slog.String("reference", reference),
		slog.Float64("amount", input.Amount),
	)

	return &usecase.DepositOutput{
		Reference:   reference,
		CheckoutURL: session.CheckoutURL,
		QRCodePNG:   qrPNG,
		Amount:      input.Amount,
	}, nil
}

// ConfirmDeposit settles a pending deposit: the ledger entry flips to
// COMPLETED and the wallet balance is credited, atomically.
func (srv *walletService) ConfirmDeposit(ctx context.Context, input *usecase.ConfirmDepositInput) (*entity.Transaction, error) {
	var confirmed *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		walletRepo := repoFactory.WalletRepo()

		depositTx, err := walletRepo.FindTransactionByReference(ctx, input.Reference)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound
			}

			return errors.Wrap(err, "failed to find deposit by reference")
		}

		wallet, err := walletRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return domainerrors.ErrWalletNotFound
			}

			return errors.Wrap(err, "failed to find wallet")
		}
		if depositTx.WalletID != wallet.ID {
			return domainerrors.ErrTransactionNotFound
		}
		if depositTx.Status != entity.TxPending {
			return domainerrors.ErrConflict.WrapMessage("deposit already settled")
		}

		depositTx.Status = entity.TxCompleted
		depositTx.BalanceBefore = wallet.Balance
		depositTx.BalanceAfter = wallet.Balance + depositTx.Amount
		if err := walletRepo.UpdateTransaction(ctx, depositTx); err != nil {
			return errors.Wrap(err, "failed to settle deposit")
		}

		wallet.Balance += depositTx.Amount
		if err := walletRepo.Update(ctx, wallet); err != nil {
			return errors.Wrap(err, "failed to credit wallet")
		}

		notification := &entity.Notification{
			UserID:  input.UserID,
			Type:    entity.NotificationWallet,
			Title:   "Deposit confirmed",
			Content: fmt.Sprintf("Your deposit of %.2f has been credited", depositTx.Amount),
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to notify depositor")
		}

		confirmed = depositTx

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Deposit confirmed",
		slog.Any("userID", input.UserID),
		slog.String("reference", input.Reference),
	)

	return confirmed, nil
}

// ListTransactions pages through the caller's ledger, newest first.
func (srv *walletService) ListTransactions(ctx context.Context, input *usecase.ListTransactionsInput) (*usecase.TransactionPage, error) {
	wallet, err := srv.GetWallet(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	items, total, err := srv.walletRepo.ListTransactions(ctx, wallet.ID, normalizeLimit(input.Limit), max(input.Offset, 0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return &usecase.TransactionPage{Items: items, Total: total}, nil
}
