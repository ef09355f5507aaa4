package repository

import (
	"context"

	"zeemart/internal/domain/entity"
	"zeemart/internal/errors"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// ListOrdersOptions filters order list queries. Nil pointer fields are
// not applied.
type ListOrdersOptions struct {
	BuyerID  *uuid.UUID
	SellerID *uuid.UUID
	Status   *entity.OrderStatus
	Limit    int
	Offset   int
}

// MarketplaceTotals aggregates order money columns for the admin dashboard.
type MarketplaceTotals struct {
	GrossVolume float64 // Sum of totalAmount over all orders.
	FeeRevenue  float64 // Sum of serviceFee over all orders.
}

// OrderRepository persists orders. JSON text columns (shipping address,
// delivery files) are encoded and decoded inside the implementation.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, opts ListOrdersOptions) ([]*entity.Order, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	Totals(ctx context.Context) (*MarketplaceTotals, error)
}
