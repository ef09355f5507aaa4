package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zeemart/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newAuthedJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, uuid.New())

	return c, rec
}

// A JSON literal null binds without error but leaves the input pointer nil;
// the handler must answer 400, not panic into a 500.
func TestOrderHandler_Dispute_NullBody(t *testing.T) {
	h := NewOrderHandler(nil, slog.Default())

	c, rec := newAuthedJSONContext(t, http.MethodPost, "/api/orders/x/dispute", "null")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.Dispute(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid dispute input"}`, rec.Body.String())
}

func TestOrderHandler_UpdateStatus_NullBody(t *testing.T) {
	h := NewOrderHandler(nil, slog.Default())

	c, rec := newAuthedJSONContext(t, http.MethodPut, "/api/orders/x/status", "null")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.UpdateStatus(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid status input"}`, rec.Body.String())
}

func TestOrderHandler_CreateOrder_NullBody(t *testing.T) {
	h := NewOrderHandler(nil, slog.Default())

	c, rec := newAuthedJSONContext(t, http.MethodPost, "/api/orders", "null")

	err := h.CreateOrder(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid order input"}`, rec.Body.String())
}
