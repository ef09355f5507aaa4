package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zeemart/internal/domain/entity"
	"zeemart/internal/domain/service"
	mockService "zeemart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("bad-token").Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "Bearer bad-token")

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
}

func TestAuthenticate_SetsIdentity(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.TokenClaims{
		UserID: userID,
		Email:  "buyer@example.com",
		Role:   entity.RoleBuyer,
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "Bearer good-token")

	err := m.Authenticate(func(c echo.Context) error {
		gotID, ok := UserIDFromContext(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)

		gotRole, ok := RoleFromContext(c)
		assert.True(t, ok)
		assert.Equal(t, entity.RoleBuyer, gotRole)

		return c.NoContent(http.StatusOK)
	})(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "")
	c.Set(ContextRole, entity.RoleBuyer)

	err := m.RequireRole(entity.RoleSeller)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_NonAdminGets401(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "")
	c.Set(ContextRole, entity.RoleSeller)

	err := m.RequireAdmin(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Admin authentication required"}`, rec.Body.String())
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "")
	c.Set(ContextRole, entity.RoleAdmin)

	err := m.RequireAdmin(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
