package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the one-per-user balance ledger head. Individual movements are
// recorded as Transaction rows; the wallet keeps running totals.
type Wallet struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Balance        float64 // Spendable funds.
	PendingBalance float64 // Escrowed funds not yet released to the owner.
	TotalEarned    float64
	TotalSpent     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxDeposit       TransactionType = "DEPOSIT"
	TxOrderPayment  TransactionType = "ORDER_PAYMENT"
	TxEscrowRelease TransactionType = "ESCROW_RELEASE"
	TxRefund        TransactionType = "REFUND"
	TxWithdrawal    TransactionType = "WITHDRAWAL"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxFailed    TransactionStatus = "FAILED"
)

// Transaction is an append-only ledger entry referencing a Wallet. The
// balance snapshot fields record the wallet balance around the movement so
// the ledger can be audited without replaying it.
type Transaction struct {
	ID            uuid.UUID
	WalletID      uuid.UUID
	Type          TransactionType
	Amount        float64
	Fee           float64
	Status        TransactionStatus
	BalanceBefore float64
	BalanceAfter  float64
	Reference     string // External payment provider reference, if any.
	Description   string
	CreatedAt     time.Time
}
