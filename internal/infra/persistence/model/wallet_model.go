package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletModel mirrors the 'wallets' table. One wallet per user.
type WalletModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;unique;not null"`
	Balance        float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PendingBalance float64   `gorm:"type:decimal(12,2);not null;default:0"`
	TotalEarned    float64   `gorm:"type:decimal(12,2);not null;default:0"`
	TotalSpent     float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}

// TransactionModel mirrors the 'transactions' table, the append-only
// ledger of wallet movements.
type TransactionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WalletID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type          string    `gorm:"type:varchar(20);not null;index"`
	Status        string    `gorm:"type:varchar(16);not null;default:'PENDING'"`
	Amount        float64   `gorm:"type:decimal(12,2);not null"`
	Fee           float64   `gorm:"type:decimal(12,2);not null;default:0"`
	BalanceBefore float64   `gorm:"type:decimal(12,2);not null"`
	BalanceAfter  float64   `gorm:"type:decimal(12,2);not null"`
	Reference     string    `gorm:"type:varchar(64);unique;not null"`
	Description   string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
