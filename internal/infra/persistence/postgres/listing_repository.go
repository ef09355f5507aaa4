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

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid seller reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// Update persists changes to a listing, including stock decrements.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]interface{}{
			"title":       listingM.Title,
			"description": listingM.Description,
			"type":        listingM.Type,
			"price":       listingM.Price,
			"stock":       listingM.Stock,
			"is_active":   listingM.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// List retrieves a page of listings matching the filter, newest first, plus
// the total count of matches.
func (repo *listingRepository) List(ctx context.Context, opts repository.ListListingsOptions) ([]*entity.Listing, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	if opts.SellerID != nil {
		query = query.Where("seller_id = ?", *opts.SellerID)
	}
	if opts.Type != nil {
		query = query.Where("type = ?", string(*opts.Type))
	}
	if opts.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count listings")
	}

	query = query.Order("created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var listingModels []*model.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, total, nil
}

// --- Mapper Functions ---

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Type:        entity.ListingType(data.Type),
		Stock:       data.Stock,
		Active:      data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Type:        string(data.Type),
		Stock:       data.Stock,
		IsActive:    data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
