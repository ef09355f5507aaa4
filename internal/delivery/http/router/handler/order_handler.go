package handler

import (
	"context"
	"log/slog"
	"net/http"

	"zeemart/internal/delivery/http/middleware"
	"zeemart/internal/delivery/http/response"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOrder places an order on a listing.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid order input")
	}
	input.BuyerID = userID

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, order)
}

// ListBuyerOrders returns the caller's orders placed as a buyer.
func (h *OrderHandler) ListBuyerOrders(c echo.Context) error {
	return h.listOrders(c, h.uc.ListBuyerOrders)
}

// ListSellerOrders returns the caller's orders received as a seller.
func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	return h.listOrders(c, h.uc.ListSellerOrders)
}

func (h *OrderHandler) listOrders(
	c echo.Context,
	list func(ctx context.Context, input *usecase.ListOrdersInput) (*usecase.OrderPage, error),
) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	input := &usecase.ListOrdersInput{
		UserID: userID,
		Status: c.QueryParam("status"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}

	page, err := list(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items": page.Items,
		"total": page.Total,
	})
}

// GetOrder fetches one order, restricted to its buyer, seller, or an admin.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}
	role, _ := middleware.RoleFromContext(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, role, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}

// UpdateStatus requests an order status transition. What is allowed depends
// on the caller's relationship to the order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}
	role, _ := middleware.RoleFromContext(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	var input *usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid status input")
	}
	input.OrderID = orderID
	input.CallerID = userID
	input.CallerRole = role

	order, err := h.uc.UpdateStatus(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}

// Dispute opens a dispute on an order.
func (h *OrderHandler) Dispute(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	var input *usecase.DisputeOrderInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid dispute input")
	}
	input.OrderID = orderID
	input.CallerID = userID

	order, err := h.uc.Dispute(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}
