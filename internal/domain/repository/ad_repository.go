package repository

import (
	"context"
	"time"

	"zeemart/internal/domain/entity"
	"zeemart/internal/errors"

	"github.com/google/uuid"
)

var ErrAdNotFound = errors.New("ad not found")

// ListAdsOptions filters ad queries. LiveAt restricts results to active ads
// whose optional date window contains the instant.
type ListAdsOptions struct {
	Placement *entity.AdPlacement
	LiveAt    *time.Time
	Limit     int
	Offset    int
}

// AdRepository persists promotional records.
type AdRepository interface {
	Create(ctx context.Context, ad *entity.Ad) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ad, error)
	Update(ctx context.Context, ad *entity.Ad) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts ListAdsOptions) ([]*entity.Ad, error)
}
