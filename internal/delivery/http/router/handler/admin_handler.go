package handler

import (
	"log/slog"
	"net/http"

	"zeemart/internal/delivery/http/response"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin console handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard returns marketplace-wide counters and money totals.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"totalUsers":     stats.TotalUsers,
		"totalSellers":   stats.TotalSellers,
		"totalOrders":    stats.TotalOrders,
		"disputedOrders": stats.DisputedOrders,
		"grossVolume":    stats.GrossVolume,
		"feeRevenue":     stats.FeeRevenue,
	})
}

// ListDisputes returns the disputed orders queue.
func (h *AdminHandler) ListDisputes(c echo.Context) error {
	page, err := h.uc.ListDisputes(c.Request().Context(), intQuery(c, "limit"), intQuery(c, "offset"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items": page.Items,
		"total": page.Total,
	})
}

// ListUsers pages through users for the moderation console.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	input := &usecase.ListManagedUsersInput{
		Role:               c.QueryParam("role"),
		VerificationStatus: c.QueryParam("verificationStatus"),
		Limit:              intQuery(c, "limit"),
		Offset:             intQuery(c, "offset"),
	}
	switch c.QueryParam("banned") {
	case "true":
		banned := true
		input.Banned = &banned
	case "false":
		banned := false
		input.Banned = &banned
	}

	page, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, user := range page.Items {
		user.PasswordHash = ""
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items": page.Items,
		"total": page.Total,
	})
}

type banUserRequest struct {
	Reason string `json:"reason"`
}

// BanUser bans a user with a recorded reason.
func (h *AdminHandler) BanUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req banUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid ban input")
	}

	if err := h.uc.BanUser(c.Request().Context(), &usecase.BanUserInput{
		UserID: userID,
		Reason: req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "User banned"})
}

// UnbanUser lifts a ban.
func (h *AdminHandler) UnbanUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.uc.UnbanUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "User unbanned"})
}

// ListVerifications pages through seller verification submissions.
func (h *AdminHandler) ListVerifications(c echo.Context) error {
	page, err := h.uc.ListVerifications(c.Request().Context(),
		c.QueryParam("status"), intQuery(c, "limit"), intQuery(c, "offset"))
	if err != nil {
		return errors.WithStack(err)
	}

	for _, user := range page.Items {
		user.PasswordHash = ""
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items": page.Items,
		"total": page.Total,
	})
}

type reviewVerificationRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

// ReviewVerification resolves a pending seller verification.
func (h *AdminHandler) ReviewVerification(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req reviewVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	profile, err := h.uc.ReviewVerification(c.Request().Context(), &usecase.ReviewVerificationInput{
		UserID:  userID,
		Approve: req.Approve,
		Reason:  req.Reason,
		Details: req.Details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, profile)
}
