package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingType distinguishes how a listing is fulfilled. Stock is only
// meaningful for PHYSICAL listings.
type ListingType string

const (
	ListingPhysical ListingType = "PHYSICAL"
	ListingDigital  ListingType = "DIGITAL"
	ListingService  ListingType = "SERVICE"
)

// Valid reports whether t is a known listing type.
func (t ListingType) Valid() bool {
	switch t {
	case ListingPhysical, ListingDigital, ListingService:
		return true
	default:
		return false
	}
}

// Listing is a sellable item owned by a seller.
type Listing struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Title       string
	Description string
	Price       float64
	Type        ListingType
	Stock       int // Remaining quantity; only enforced for PHYSICAL listings.
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
