package impl

import (
	"context"
	"testing"
	"time"

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

func createTestAdService(t *testing.T) (usecase.AdUsecase, *mockRepo.MockAdRepository) {
	adRepo := mockRepo.NewMockAdRepository(t)
	svc := NewAdService(AdServiceParams{
		AdRepo: adRepo,
		Logger: newDiscardLogger(),
	})

	return svc, adRepo
}

func TestAdService_CreateAd_Success(t *testing.T) {
	svc, adRepo := createTestAdService(t)

	ctx := context.Background()
	adRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Ad")).
		Run(func(ctx context.Context, ad *entity.Ad) {
			ad.ID = uuid.New()
		}).
		Return(nil)

	ad, err := svc.CreateAd(ctx, &usecase.AdInput{
		Title:     "Summer sale",
		ImageURL:  "https://cdn.example.test/summer.png",
		LinkURL:   "https://example.test/sale",
		Placement: "home_banner",
		Active:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AdHomeBanner, ad.Placement)
	assert.True(t, ad.Active)
}

func TestAdService_CreateAd_UnknownPlacement(t *testing.T) {
	svc, _ := createTestAdService(t)

	ad, err := svc.CreateAd(context.Background(), &usecase.AdInput{
		Title:     "Summer sale",
		Placement: "BILLBOARD",
	})

	assert.Nil(t, ad)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlacement)
}

func TestAdService_CreateAd_InvertedWindow(t *testing.T) {
	svc, _ := createTestAdService(t)

	starts := time.Now().Add(48 * time.Hour)
	ends := time.Now().Add(24 * time.Hour)

	ad, err := svc.CreateAd(context.Background(), &usecase.AdInput{
		Title:     "Summer sale",
		Placement: "SIDEBAR",
		StartsAt:  &starts,
		EndsAt:    &ends,
	})

	assert.Nil(t, ad)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdWindow)
}

func TestAdService_UpdateAd_NotFound(t *testing.T) {
	svc, adRepo := createTestAdService(t)

	ctx := context.Background()
	id := uuid.New()
	adRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAdNotFound)

	ad, err := svc.UpdateAd(ctx, id, &usecase.AdInput{
		Title:     "Renamed",
		Placement: "CHECKOUT",
	})

	assert.Nil(t, ad)
	assert.ErrorIs(t, err, domainerrors.ErrAdNotFound)
}

func TestAdService_BrowseLiveAds_FiltersByInstant(t *testing.T) {
	svc, adRepo := createTestAdService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	adRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListAdsOptions")).
		Run(func(ctx context.Context, opts repository.ListAdsOptions) {
			require.NotNil(t, opts.LiveAt)
			assert.True(t, opts.LiveAt.Equal(now))
			require.NotNil(t, opts.Placement)
			assert.Equal(t, entity.AdSearchResults, *opts.Placement)
		}).
		Return([]*entity.Ad{}, nil)

	_, err := svc.BrowseLiveAds(ctx, &usecase.BrowseAdsInput{
		Placement: "search_results",
		Now:       now,
	})

	require.NoError(t, err)
}

func TestAdService_DeleteAd_Success(t *testing.T) {
	svc, adRepo := createTestAdService(t)

	ctx := context.Background()
	id := uuid.New()
	adRepo.EXPECT().Delete(ctx, id).Return(nil)

	assert.NoError(t, svc.DeleteAd(ctx, id))
}
