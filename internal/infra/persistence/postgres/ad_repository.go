package postgres

import (
	"context"
	"encoding/json"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adRepository implements the repository.AdRepository interface.
type adRepository struct {
	db *gorm.DB
}

// NewAdRepository is the constructor for adRepository.
func NewAdRepository(db *gorm.DB) repository.AdRepository {
	return &adRepository{
		db: db,
	}
}

// Create persists a new ad.
func (repo *adRepository) Create(ctx context.Context, ad *entity.Ad) error {
	adM := fromAdDomain(ad)

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad")
	}

	// Update the entity with generated values
	ad.ID = adM.ID
	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

// FindByID retrieves an ad by its unique ID.
func (repo *adRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ad, error) {
	var adM model.AdModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdNotFound
		}

		return nil, errors.Wrap(err, "failed to find ad by ID")
	}

	return toAdDomain(&adM), nil
}

// Update persists changes to an ad.
func (repo *adRepository) Update(ctx context.Context, ad *entity.Ad) error {
	adM := fromAdDomain(ad)

	result := repo.db.WithContext(ctx).
		Model(&model.AdModel{}).
		Where("id = ?", ad.ID).
		Updates(map[string]interface{}{
			"title":               adM.Title,
			"image_url":           adM.ImageURL,
			"link_url":            adM.LinkURL,
			"placement":           adM.Placement,
			"is_active":           adM.IsActive,
			"starts_at":           adM.StartsAt,
			"ends_at":             adM.EndsAt,
			"target_marketplaces": adM.TargetMarketplaces,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ad")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdNotFound
	}

	return nil
}

// Delete removes an ad permanently.
func (repo *adRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete ad")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdNotFound
	}

	return nil
}

// List retrieves ads matching the filter, newest first. When LiveAt is set
// only active ads whose optional window contains the instant are returned.
func (repo *adRepository) List(ctx context.Context, opts repository.ListAdsOptions) ([]*entity.Ad, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdModel{})

	if opts.Placement != nil {
		query = query.Where("placement = ?", string(*opts.Placement))
	}
	if opts.LiveAt != nil {
		query = query.
			Where("is_active = ?", true).
			Where("starts_at IS NULL OR starts_at <= ?", *opts.LiveAt).
			Where("ends_at IS NULL OR ends_at >= ?", *opts.LiveAt)
	}

	query = query.Order("created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var adModels []*model.AdModel
	if err := query.Find(&adModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	ads := make([]*entity.Ad, 0, len(adModels))
	for _, adM := range adModels {
		ads = append(ads, toAdDomain(adM))
	}

	return ads, nil
}

// --- Mapper Functions ---

func toAdDomain(data *model.AdModel) *entity.Ad {
	if data == nil {
		return nil
	}

	var targets []string
	if data.TargetMarketplaces != "" {
		_ = json.Unmarshal([]byte(data.TargetMarketplaces), &targets)
	}

	return &entity.Ad{
		ID:                 data.ID,
		Title:              data.Title,
		ImageURL:           data.ImageURL,
		LinkURL:            data.LinkURL,
		Placement:          entity.AdPlacement(data.Placement),
		Active:             data.IsActive,
		StartsAt:           data.StartsAt,
		EndsAt:             data.EndsAt,
		TargetMarketplaces: targets,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromAdDomain(data *entity.Ad) *model.AdModel {
	if data == nil {
		return nil
	}

	targets := ""
	if len(data.TargetMarketplaces) > 0 {
		if encoded, err := json.Marshal(data.TargetMarketplaces); err == nil {
			targets = string(encoded)
		}
	}

	return &model.AdModel{
		ID:                 data.ID,
		Title:              data.Title,
		ImageURL:           data.ImageURL,
		LinkURL:            data.LinkURL,
		Placement:          string(data.Placement),
		IsActive:           data.Active,
		StartsAt:           data.StartsAt,
		EndsAt:             data.EndsAt,
		TargetMarketplaces: targets,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
