package postgres

import (
	"context"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationTokenRepository implements the repository.VerificationTokenRepository interface.
type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository is the constructor for verificationTokenRepository.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{
		db: db,
	}
}

// Replace deletes any prior token for the identifier and stores the new one.
// Callers run this inside a transaction so the delete and insert are atomic.
func (repo *verificationTokenRepository) Replace(ctx context.Context, token *entity.VerificationToken) error {
	if err := repo.db.WithContext(ctx).
		Where("identifier = ?", token.Identifier).
		Delete(&model.VerificationTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete prior verification token")
	}

	tokenM := fromVerificationTokenDomain(token)
	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByIdentifier retrieves the live token for an identifier.
func (repo *verificationTokenRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel

	if err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token")
	}

	return toVerificationTokenDomain(&tokenM), nil
}

// DeleteByIdentifier removes the live token after successful verification.
func (repo *verificationTokenRepository) DeleteByIdentifier(ctx context.Context, identifier string) error {
	if err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Delete(&model.VerificationTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete verification token")
	}

	return nil
}

// --- Mapper Functions ---

func toVerificationTokenDomain(data *model.VerificationTokenModel) *entity.VerificationToken {
	if data == nil {
		return nil
	}

	return &entity.VerificationToken{
		ID:         data.ID,
		Identifier: data.Identifier,
		Token:      data.Token,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromVerificationTokenDomain(data *entity.VerificationToken) *model.VerificationTokenModel {
	if data == nil {
		return nil
	}

	return &model.VerificationTokenModel{
		ID:         data.ID,
		Identifier: data.Identifier,
		Token:      data.Token,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}
