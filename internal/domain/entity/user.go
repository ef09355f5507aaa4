// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what a profile is allowed to do on the marketplace.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// IsAssignable reports whether users may select this role themselves.
// ADMIN is never self-assignable.
func (r Role) IsAssignable() bool {
	return r == RoleBuyer || r == RoleSeller
}

// VerificationStatus tracks the seller KYC review state on a profile.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
	VerificationVerified VerificationStatus = "verified"
)

// User is the core identity record. It contains only the fundamental
// identity information shared across all roles; role and moderation data
// live on the Profile extension record.
type User struct {
	ID              uuid.UUID // The unique identifier for the user.
	Email           string    // Primary contact email, unique, stored lower-cased.
	Name            string    // Display name.
	PasswordHash    string    // bcrypt hash of the login password.
	Phone           string    // Optional phone number.
	Image           string    // Optional avatar URL.
	EmailVerifiedAt *time.Time
	Profile         *Profile // One profile per user, created at registration.
	Wallet          *Wallet  // One wallet per user, created at registration.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile is the per-user extension record carrying role, moderation and
// seller verification data.
type Profile struct {
	UserID uuid.UUID // Foreign key linking this profile to its User.
	Role   Role

	// Seller verification (KYC) review state.
	VerificationStatus   VerificationStatus
	VerificationNotes    string // Free-form details supplied by the reviewer.
	RejectionReason      string
	SubmittedAt          *time.Time
	ReviewedAt           *time.Time

	// Moderation.
	IsBanned     bool
	BannedReason string

	// Device token for push delivery; empty when the user never registered one.
	DeviceToken string

	// Business / legal identity fields submitted for seller verification.
	BusinessName       string
	BusinessAddress    string
	LegalName          string
	TaxID              string
	DocumentKeys       []string // Storage keys of uploaded verification documents.

	UpdatedAt time.Time
}

// CanList reports whether the profile may create listings.
// Selling requires the SELLER role and a successful verification review.
func (p *Profile) CanList() bool {
	if p == nil {
		return false
	}

	return p.Role == RoleSeller &&
		(p.VerificationStatus == VerificationApproved || p.VerificationStatus == VerificationVerified)
}
