package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zeemart/internal/delivery/context"
	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPageSize = 20

// listingService implements the ListingUsecase interface.
type listingService struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ListingRepo repository.ListingRepository
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		userRepo:    params.UserRepo,
		listingRepo: params.ListingRepo,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing creates a listing for a verified seller.
func (srv *listingService) CreateListing(ctx context.Context, input *usecase.CreateListingInput) (*entity.Listing, error) {
	listingType := entity.ListingType(strings.ToUpper(strings.TrimSpace(input.Type)))
	if !listingType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown listing type")
	}

	seller, err := srv.userRepo.FindByID(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}
	if !seller.Profile.CanList() {
		return nil, domainerrors.ErrSellerNotVerified
	}

	listing := &entity.Listing{
		SellerID:    input.SellerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Type:        listingType,
		Stock:       input.Stock,
		Active:      true,
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created",
		slog.Any("listingID", listing.ID),
		slog.Any("sellerID", input.SellerID),
		slog.String("type", string(listingType)),
	)

	return listing, nil
}

// GetListing fetches one listing by ID.
func (srv *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// BrowseListings pages through active listings.
func (srv *listingService) BrowseListings(ctx context.Context, input *usecase.BrowseListingsInput) (*usecase.ListingPage, error) {
	opts := repository.ListListingsOptions{
		ActiveOnly: true,
		Limit:      normalizeLimit(input.Limit),
		Offset:     max(input.Offset, 0),
	}

	if input.Type != "" {
		listingType := entity.ListingType(strings.ToUpper(input.Type))
		if !listingType.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown listing type")
		}
		opts.Type = &listingType
	}

	items, total, err := srv.listingRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse listings")
	}

	return &usecase.ListingPage{Items: items, Total: total}, nil
}

// normalizeLimit clamps a requested page size to a sane window.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > 100 {
		return 100
	}

	return limit
}
