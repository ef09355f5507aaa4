package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceFeeRate is the platform cut applied to every order total.
const ServiceFeeRate = 0.05

// OrderStatus is the lifecycle state of an order. The vocabulary is closed
// (requests are validated for membership) but the transition order is not
// enforced for sellers and admins.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderDisputed   OrderStatus = "DISPUTED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderShipped, OrderDelivered,
		OrderCompleted, OrderDisputed, OrderCancelled:
		return true
	default:
		return false
	}
}

// EscrowStatus indicates whether the buyer's payment is held, released to
// the seller, or refunded. It is a flag on the order, not a separate ledger.
type EscrowStatus string

const (
	EscrowNone     EscrowStatus = "NONE"
	EscrowHeld     EscrowStatus = "HELD"
	EscrowReleased EscrowStatus = "RELEASED"
	EscrowRefunded EscrowStatus = "REFUNDED"
)

// ShippingAddress is the typed form of the order's shipping destination.
// It is serialized to a JSON text column at the persistence boundary.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// DeliveryFile is a single file attached by the seller while fulfilling a
// digital or service order.
type DeliveryFile struct {
	Name string `json:"name"`
	Key  string `json:"key"` // Storage key in the document bucket.
	Size int64  `json:"size,omitempty"`
}

// Order links a buyer and a seller to a listing with escrow-style status
// tracking. Monetary invariants: TotalAmount = UnitPrice * Quantity and
// ServiceFee = ServiceFeeRate * TotalAmount.
type Order struct {
	ID          uuid.UUID
	OrderNumber string // Format: ZEE-<base36 ms timestamp>-<random>.
	BuyerID     uuid.UUID
	SellerID    uuid.UUID
	ListingID   uuid.UUID

	Quantity    int
	UnitPrice   float64
	TotalAmount float64
	ServiceFee  float64

	Status       OrderStatus
	EscrowStatus EscrowStatus

	TrackingNumber string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CompletedAt    *time.Time

	DisputeReason string
	DisputedAt    *time.Time

	ShippingAddress *ShippingAddress
	Requirements    string // Buyer-supplied requirements for service orders.
	DeliveryFiles   []DeliveryFile
	DeliveryNotes   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartyOf classifies the caller's relationship to the order.
func (o *Order) PartyOf(userID uuid.UUID) OrderParty {
	switch userID {
	case o.SellerID:
		return PartySeller
	case o.BuyerID:
		return PartyBuyer
	default:
		return PartyNone
	}
}

// OrderParty identifies which side of an order a caller is on.
type OrderParty int

const (
	PartyNone OrderParty = iota
	PartyBuyer
	PartySeller
)
