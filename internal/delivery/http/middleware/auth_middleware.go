// Package middleware contains HTTP middlewares for the echo server.
package middleware

import (
	"strings"

	"zeemart/internal/delivery/http/response"
	"zeemart/internal/domain/entity"
	"zeemart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// identity and role on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := RoleFromContext(c)
			if !ok {
				return response.Forbidden(c, "Permission denied: role information missing")
			}
			if role != requiredRole {
				return response.Forbidden(c, "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// RequireAdmin gates the admin console. A non-admin caller gets 401, the
// routes behave as if they required a different authentication entirely.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := RoleFromContext(c)
		if !ok || role != entity.RoleAdmin {
			return response.Unauthorized(c, "Admin authentication required")
		}

		return next(c)
	}
}

// UserIDFromContext returns the authenticated caller's ID set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextUserID).(uuid.UUID)

	return userID, ok
}

// RoleFromContext returns the authenticated caller's role set by Authenticate.
func RoleFromContext(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(ContextRole).(entity.Role)

	return role, ok
}
