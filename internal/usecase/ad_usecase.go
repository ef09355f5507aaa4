package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// AdInput carries the fields of an ad create or update.
type AdInput struct {
	Title              string
	ImageURL           string
	LinkURL            string
	Placement          string
	Active             bool
	StartsAt           *time.Time
	EndsAt             *time.Time
	TargetMarketplaces []string
}

// BrowseAdsInput filters the public ad feed.
type BrowseAdsInput struct {
	Placement string
	Now       time.Time
}

// AdUsecase defines ad management (admin) and the public live-ad feed.
type AdUsecase interface {
	CreateAd(ctx context.Context, input *AdInput) (*entity.Ad, error)
	UpdateAd(ctx context.Context, id uuid.UUID, input *AdInput) (*entity.Ad, error)
	DeleteAd(ctx context.Context, id uuid.UUID) error
	// ListAds returns all ads for the admin console.
	ListAds(ctx context.Context, placement string) ([]*entity.Ad, error)
	// BrowseLiveAds returns active ads whose optional window contains now.
	BrowseLiveAds(ctx context.Context, input *BrowseAdsInput) ([]*entity.Ad, error)
}
