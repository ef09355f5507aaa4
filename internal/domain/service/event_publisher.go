package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// OrderEvent is the message published whenever an order is created or its
// status changes. Downstream consumers (analytics, fulfilment) subscribe
// to the topic; publishing is best effort and never blocks the request.
type OrderEvent struct {
	OrderID     uuid.UUID          `json:"orderId"`
	OrderNumber string             `json:"orderNumber"`
	BuyerID     uuid.UUID          `json:"buyerId"`
	SellerID    uuid.UUID          `json:"sellerId"`
	Status      entity.OrderStatus `json:"status"`
	TotalAmount float64            `json:"totalAmount"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

// OrderEventPublisher pushes order events to the configured broker.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}
