package repository

import (
	"context"

	"zeemart/internal/domain/entity"
	"zeemart/internal/errors"

	"github.com/google/uuid"
)

var ErrListingNotFound = errors.New("listing not found")

// ListListingsOptions filters the public listing browse query.
type ListListingsOptions struct {
	SellerID   *uuid.UUID
	Type       *entity.ListingType
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ListingRepository persists sellable items.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	List(ctx context.Context, opts ListListingsOptions) ([]*entity.Listing, int64, error)
}
