package impl

import (
	"context"
	"testing"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	mockRepo "zeemart/internal/mocks/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	userRepo    *mockRepo.MockUserRepository
	listingRepo *mockRepo.MockListingRepository
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)

	svc := NewListingService(ListingServiceParams{
		UserRepo:    userRepo,
		ListingRepo: listingRepo,
		Logger:      newDiscardLogger(),
	})

	return listingServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

func TestListingService_CreateListing_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.User{
		ID: sellerID,
		Profile: &entity.Profile{
			UserID:             sellerID,
			Role:               entity.RoleSeller,
			VerificationStatus: entity.VerificationApproved,
		},
	}, nil)

	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(ctx context.Context, listing *entity.Listing) {
			listing.ID = uuid.New()
		}).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, &usecase.CreateListingInput{
		SellerID:    sellerID,
		Title:       "Logo design",
		Description: "Custom logo in 3 days",
		Price:       150,
		Type:        "service",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ListingService, listing.Type)
	assert.True(t, listing.Active)
	assert.Equal(t, sellerID, listing.SellerID)
}

func TestListingService_CreateListing_UnverifiedSeller(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.User{
		ID: sellerID,
		Profile: &entity.Profile{
			UserID:             sellerID,
			Role:               entity.RoleSeller,
			VerificationStatus: entity.VerificationPending,
		},
	}, nil)

	listing, err := fx.service.CreateListing(ctx, &usecase.CreateListingInput{
		SellerID: sellerID,
		Title:    "Logo design",
		Price:    150,
		Type:     "SERVICE",
	})

	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotVerified)
}

func TestListingService_CreateListing_BuyerRefused(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.User{
		ID: sellerID,
		Profile: &entity.Profile{
			UserID:             sellerID,
			Role:               entity.RoleBuyer,
			VerificationStatus: entity.VerificationApproved,
		},
	}, nil)

	listing, err := fx.service.CreateListing(ctx, &usecase.CreateListingInput{
		SellerID: sellerID,
		Title:    "Logo design",
		Price:    150,
		Type:     "SERVICE",
	})

	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotVerified)
}

func TestListingService_CreateListing_UnknownType(t *testing.T) {
	fx := createTestListingService(t)

	listing, err := fx.service.CreateListing(context.Background(), &usecase.CreateListingInput{
		SellerID: uuid.New(),
		Title:    "Mystery",
		Type:     "HOLOGRAM",
	})

	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.listingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	listing, err := fx.service.GetListing(ctx, id)

	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_BrowseListings_DefaultsAndCaps(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()

	fx.listingRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListListingsOptions")).
		Run(func(ctx context.Context, opts repository.ListListingsOptions) {
			assert.True(t, opts.ActiveOnly)
			assert.Equal(t, 20, opts.Limit)
			assert.Equal(t, 0, opts.Offset)
		}).
		Return([]*entity.Listing{}, 0, nil).
		Once()

	_, err := fx.service.BrowseListings(ctx, &usecase.BrowseListingsInput{Limit: 0, Offset: -1})
	require.NoError(t, err)

	fx.listingRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListListingsOptions")).
		Run(func(ctx context.Context, opts repository.ListListingsOptions) {
			assert.Equal(t, 100, opts.Limit)
		}).
		Return([]*entity.Listing{}, 0, nil).
		Once()

	_, err = fx.service.BrowseListings(ctx, &usecase.BrowseListingsInput{Limit: 5000})
	require.NoError(t, err)
}

func TestListingService_BrowseListings_UnknownTypeFilter(t *testing.T) {
	fx := createTestListingService(t)

	page, err := fx.service.BrowseListings(context.Background(), &usecase.BrowseListingsInput{
		Type: "HOLOGRAM",
	})

	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
