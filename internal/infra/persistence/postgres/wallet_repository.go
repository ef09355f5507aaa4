package postgres

import (
	"context"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// walletRepository implements the repository.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create persists a new wallet.
func (repo *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletM := fromWalletDomain(wallet)

	if err := repo.db.WithContext(ctx).Create(walletM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "user already has a wallet")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wallet")
	}

	// Update the entity with generated values
	wallet.ID = walletM.ID
	wallet.CreatedAt = walletM.CreatedAt
	wallet.UpdatedAt = walletM.UpdatedAt

	return nil
}

// FindByUserID retrieves the wallet owned by the given user.
func (repo *walletRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&walletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet by user ID")
	}

	return toWalletDomain(&walletM), nil
}

// Update persists the wallet's running balance columns.
func (repo *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]interface{}{
			"balance":         wallet.Balance,
			"pending_balance": wallet.PendingBalance,
			"total_earned":    wallet.TotalEarned,
			"total_spent":     wallet.TotalSpent,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update wallet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWalletNotFound
	}

	return nil
}

// CreateTransaction appends a ledger entry.
func (repo *walletRepository) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid wallet reference")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "duplicate transaction reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	// Update the entity with generated values
	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

// FindTransactionByReference retrieves a ledger entry by its provider reference.
func (repo *walletRepository) FindTransactionByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var txM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by reference")
	}

	return toTransactionDomain(&txM), nil
}

// UpdateTransaction persists a ledger entry's settlement fields.
func (repo *walletRepository) UpdateTransaction(ctx context.Context, tx *entity.Transaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"status":         string(tx.Status),
			"balance_before": tx.BalanceBefore,
			"balance_after":  tx.BalanceAfter,
			"description":    tx.Description,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// ListTransactions retrieves a page of ledger entries, newest first, plus
// the total count.
func (repo *walletRepository) ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*entity.Transaction, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("wallet_id = ?", walletID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var txModels []*model.TransactionModel
	if err := query.Find(&txModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	txs := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toTransactionDomain(txM))
	}

	return txs, total, nil
}

// --- Mapper Functions ---

func toWalletDomain(data *model.WalletModel) *entity.Wallet {
	if data == nil {
		return nil
	}

	return &entity.Wallet{
		ID:             data.ID,
		UserID:         data.UserID,
		Balance:        data.Balance,
		PendingBalance: data.PendingBalance,
		TotalEarned:    data.TotalEarned,
		TotalSpent:     data.TotalSpent,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromWalletDomain(data *entity.Wallet) *model.WalletModel {
	if data == nil {
		return nil
	}

	return &model.WalletModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Balance:        data.Balance,
		PendingBalance: data.PendingBalance,
		TotalEarned:    data.TotalEarned,
		TotalSpent:     data.TotalSpent,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:            data.ID,
		WalletID:      data.WalletID,
		Type:          entity.TransactionType(data.Type),
		Amount:        data.Amount,
		Fee:           data.Fee,
		Status:        entity.TransactionStatus(data.Status),
		BalanceBefore: data.BalanceBefore,
		BalanceAfter:  data.BalanceAfter,
		Reference:     data.Reference,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:            data.ID,
		WalletID:      data.WalletID,
		Type:          string(data.Type),
		Amount:        data.Amount,
		Fee:           data.Fee,
		Status:        string(data.Status),
		BalanceBefore: data.BalanceBefore,
		BalanceAfter:  data.BalanceAfter,
		Reference:     data.Reference,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
	}
}
