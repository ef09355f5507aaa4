package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// DepositInput starts a wallet top-up.
type DepositInput struct {
	UserID uuid.UUID
	Amount float64
}

// DepositOutput returns the pending checkout created with the payment
// provider. QRCodePNG is the checkout URL rendered as a scannable image.
type DepositOutput struct {
	Reference   string
	CheckoutURL string
	QRCodePNG   []byte
	Amount      float64
}

// ConfirmDepositInput settles a pending deposit by its provider reference.
type ConfirmDepositInput struct {
	UserID    uuid.UUID
	Reference string
}

// ListTransactionsInput pages through the caller's ledger.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// TransactionPage is one page of ledger entries plus the total count.
type TransactionPage struct {
	Items []*entity.Transaction
	Total int64
}

// WalletUsecase defines the interface for wallet-related business operations.
type WalletUsecase interface {
	// GetWallet returns the caller's wallet, provisioning an empty one for
	// accounts created before wallets existed.
	GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)
	Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error)
	ConfirmDeposit(ctx context.Context, input *ConfirmDepositInput) (*entity.Transaction, error)
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*TransactionPage, error)
}
