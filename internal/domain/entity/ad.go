package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdPlacement identifies where on the storefront an ad is shown.
type AdPlacement string

const (
	AdHomeBanner    AdPlacement = "HOME_BANNER"
	AdSidebar       AdPlacement = "SIDEBAR"
	AdSearchResults AdPlacement = "SEARCH_RESULTS"
	AdCheckout      AdPlacement = "CHECKOUT"
)

// Valid reports whether p is a known placement.
func (p AdPlacement) Valid() bool {
	switch p {
	case AdHomeBanner, AdSidebar, AdSearchResults, AdCheckout:
		return true
	default:
		return false
	}
}

// Ad is a promotional record managed by admins. The optional date window
// bounds when an active ad is actually served.
type Ad struct {
	ID                 uuid.UUID
	Title              string
	ImageURL           string
	LinkURL            string
	Placement          AdPlacement
	Active             bool
	StartsAt           *time.Time
	EndsAt             *time.Time
	TargetMarketplaces []string // Serialized to a JSON text column.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LiveAt reports whether the ad should be served at the given instant:
// it must be active and the instant must fall inside the optional window.
func (a *Ad) LiveAt(now time.Time) bool {
	if !a.Active {
		return false
	}
	if a.StartsAt != nil && now.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && now.After(*a.EndsAt) {
		return false
	}

	return true
}
