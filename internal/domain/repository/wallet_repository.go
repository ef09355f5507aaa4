package repository

import (
	"context"

	"zeemart/internal/domain/entity"
	"zeemart/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// WalletRepository persists wallets and their append-only ledger.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)
	Update(ctx context.Context, wallet *entity.Wallet) error

	CreateTransaction(ctx context.Context, tx *entity.Transaction) error
	FindTransactionByReference(ctx context.Context, reference string) (*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *entity.Transaction) error
	// ListTransactions returns a page of ledger entries, newest first, plus the total count.
	ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*entity.Transaction, int64, error)
}
