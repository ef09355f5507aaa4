package handler

import (
	"log/slog"
	"net/http"

	"zeemart/internal/delivery/http/middleware"
	"zeemart/internal/delivery/http/response"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's notifications with the unread count.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	input := &usecase.ListNotificationsInput{
		UserID: userID,
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}

	page, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items":  page.Items,
		"total":  page.Total,
		"unread": page.Unread,
	})
}

// MarkRead flags one notification as read. Only the owner may do so.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

type registerDeviceRequest struct {
	DeviceToken string `json:"deviceToken"`
}

// RegisterDevice stores the caller's device token for push delivery.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}

	if err := h.uc.RegisterDevice(c.Request().Context(), userID, req.DeviceToken); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "Device registered"})
}
