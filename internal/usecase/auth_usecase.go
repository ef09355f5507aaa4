// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RequestOTPInput asks for a one-time password to be issued.
type RequestOTPInput struct {
	Identifier string // Email or phone number.
}

// VerifyOTPInput carries the code the user received.
type VerifyOTPInput struct {
	Identifier string
	Token      string
}

// SelectRoleInput sets the caller's marketplace role.
type SelectRoleInput struct {
	UserID uuid.UUID
	Role   string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication-related business
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// RequestOTP issues a fresh 6-digit code for the identifier, superseding
	// any earlier unconsumed code.
	RequestOTP(ctx context.Context, input *RequestOTPInput) error
	// VerifyOTP consumes a matching unexpired code and stamps the user's
	// emailVerifiedAt when the identifier is a known account email.
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error
	GetRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)
	SelectRole(ctx context.Context, input *SelectRoleInput) (entity.Role, error)
}
