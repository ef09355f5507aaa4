package service

import (
	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// TokenService issues and validates signed access tokens.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, email string, role entity.Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}
