package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// CreateListingInput defines the data required to create a listing.
type CreateListingInput struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	Price       float64
	Type        string
	Stock       int
}

// BrowseListingsInput filters the public listing browse.
type BrowseListingsInput struct {
	Type   string
	Limit  int
	Offset int
}

// ListingPage is one page of listings plus the total match count.
type ListingPage struct {
	Items []*entity.Listing
	Total int64
}

// ListingUsecase defines the interface for listing-related business operations.
type ListingUsecase interface {
	// CreateListing requires the seller role with an approved verification.
	CreateListing(ctx context.Context, input *CreateListingInput) (*entity.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	BrowseListings(ctx context.Context, input *BrowseListingsInput) (*ListingPage, error)
}
