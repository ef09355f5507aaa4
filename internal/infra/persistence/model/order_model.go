package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ShippingAddress and DeliveryFiles
// are JSON-encoded text columns.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber string    `gorm:"type:varchar(32);unique;not null"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID   uuid.UUID `gorm:"type:uuid;not null;index"`

	Quantity    int     `gorm:"not null;default:1"`
	UnitPrice   float64 `gorm:"type:decimal(12,2);not null"`
	TotalAmount float64 `gorm:"type:decimal(12,2);not null"`
	ServiceFee  float64 `gorm:"type:decimal(12,2);not null"`

	Status       string `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	EscrowStatus string `gorm:"type:varchar(16);not null;default:'NONE'"`

	TrackingNumber string `gorm:"type:varchar(100)"`
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CompletedAt    *time.Time

	DisputeReason string `gorm:"type:text"`
	DisputedAt    *time.Time

	ShippingAddress string `gorm:"type:text"`
	Requirements    string `gorm:"type:text"`
	DeliveryFiles   string `gorm:"type:text"`
	DeliveryNotes   string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
