package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	BuyerID         uuid.UUID
	ListingID       uuid.UUID
	Quantity        int
	ShippingAddress *entity.ShippingAddress
	Requirements    string
}

// UpdateOrderStatusInput carries a requested status transition. The caller's
// relationship to the order (buyer, seller, admin) decides what is allowed.
type UpdateOrderStatusInput struct {
	OrderID        uuid.UUID
	CallerID       uuid.UUID
	CallerRole     entity.Role
	Status         string
	TrackingNumber string
	DeliveryFiles  []entity.DeliveryFile
	DeliveryNotes  string
}

// DisputeOrderInput opens a dispute on an order.
type DisputeOrderInput struct {
	OrderID  uuid.UUID
	CallerID uuid.UUID
	Reason   string
}

// ListOrdersInput pages through a user's orders on one side of the market.
type ListOrdersInput struct {
	UserID uuid.UUID
	Status string
	Limit  int
	Offset int
}

// OrderPage is one page of orders plus the total match count.
type OrderPage struct {
	Items []*entity.Order
	Total int64
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder validates stock and wallet funds, then atomically decrements
	// stock, debits the buyer, holds the seller's share in escrow, and writes
	// the seller notification. An order event is published after commit.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	// GetOrder is restricted to the order's buyer, seller, or an admin.
	GetOrder(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, orderID uuid.UUID) (*entity.Order, error)
	ListBuyerOrders(ctx context.Context, input *ListOrdersInput) (*OrderPage, error)
	ListSellerOrders(ctx context.Context, input *ListOrdersInput) (*OrderPage, error)
	UpdateStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)
	Dispute(ctx context.Context, input *DisputeOrderInput) (*entity.Order, error)
}
