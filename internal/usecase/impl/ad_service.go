package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zeemart/internal/delivery/context"
	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adService implements the AdUsecase interface.
type adService struct {
	adRepo repository.AdRepository
	logger *slog.Logger
}

// AdServiceParams holds dependencies for AdService, injected by Fx.
type AdServiceParams struct {
	fx.In

	AdRepo repository.AdRepository
	Logger *slog.Logger
}

// NewAdService is the constructor for adService.
func NewAdService(params AdServiceParams) usecase.AdUsecase {
	return &adService{
		adRepo: params.AdRepo,
		logger: params.Logger,
	}
}

func (srv *adService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateAdInput checks placement membership and the optional date window.
func validateAdInput(input *usecase.AdInput) (entity.AdPlacement, error) {
	placement := entity.AdPlacement(strings.ToUpper(strings.TrimSpace(input.Placement)))
	if !placement.Valid() {
		return "", domainerrors.ErrInvalidPlacement
	}
	if input.StartsAt != nil && input.EndsAt != nil && !input.StartsAt.Before(*input.EndsAt) {
		return "", domainerrors.ErrInvalidAdWindow
	}

	return placement, nil
}

// CreateAd creates a promotional record.
func (srv *adService) CreateAd(ctx context.Context, input *usecase.AdInput) (*entity.Ad, error) {
	placement, err := validateAdInput(input)
	if err != nil {
		return nil, err
	}

	ad := &entity.Ad{
		Title:              input.Title,
		ImageURL:           input.ImageURL,
		LinkURL:            input.LinkURL,
		Placement:          placement,
		Active:             input.Active,
		StartsAt:           input.StartsAt,
		EndsAt:             input.EndsAt,
		TargetMarketplaces: input.TargetMarketplaces,
	}

	if err := srv.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create ad")
	}

	srv.log(ctx).Info("Ad created", slog.Any("adID", ad.ID), slog.String("placement", string(placement)))

	return ad, nil
}

// UpdateAd replaces an ad's fields.
func (srv *adService) UpdateAd(ctx context.Context, id uuid.UUID, input *usecase.AdInput) (*entity.Ad, error) {
	placement, err := validateAdInput(input)
	if err != nil {
		return nil, err
	}

	ad, err := srv.adRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return nil, domainerrors.ErrAdNotFound
		}

		return nil, errors.Wrap(err, "failed to find ad")
	}

	ad.Title = input.Title
	ad.ImageURL = input.ImageURL
	ad.LinkURL = input.LinkURL
	ad.Placement = placement
	ad.Active = input.Active
	ad.StartsAt = input.StartsAt
	ad.EndsAt = input.EndsAt
	ad.TargetMarketplaces = input.TargetMarketplaces

	if err := srv.adRepo.Update(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to update ad")
	}

	return ad, nil
}

// DeleteAd removes an ad permanently.
func (srv *adService) DeleteAd(ctx context.Context, id uuid.UUID) error {
	if err := srv.adRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return domainerrors.ErrAdNotFound
		}

		return errors.Wrap(err, "failed to delete ad")
	}

	srv.log(ctx).Info("Ad deleted", slog.Any("adID", id))

	return nil
}

// ListAds returns ads for the admin console, optionally filtered by placement.
func (srv *adService) ListAds(ctx context.Context, placement string) ([]*entity.Ad, error) {
	opts := repository.ListAdsOptions{}
	if placement != "" {
		p := entity.AdPlacement(strings.ToUpper(placement))
		if !p.Valid() {
			return nil, domainerrors.ErrInvalidPlacement
		}
		opts.Placement = &p
	}

	ads, err := srv.adRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return ads, nil
}

// BrowseLiveAds returns active ads whose optional window contains now.
func (srv *adService) BrowseLiveAds(ctx context.Context, input *usecase.BrowseAdsInput) ([]*entity.Ad, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	opts := repository.ListAdsOptions{LiveAt: &now}
	if input.Placement != "" {
		p := entity.AdPlacement(strings.ToUpper(input.Placement))
		if !p.Valid() {
			return nil, domainerrors.ErrInvalidPlacement
		}
		opts.Placement = &p
	}

	ads, err := srv.adRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse live ads")
	}

	return ads, nil
}
