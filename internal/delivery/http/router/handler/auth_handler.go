package handler

import (
	"log/slog"
	"net/http"

	"zeemart/internal/delivery/http/middleware"
	"zeemart/internal/delivery/http/response"
	"zeemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Never echo the stored credential back.
	output.User.PasswordHash = ""

	return response.JSON(c, http.StatusCreated, output.User)
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	output.User.PasswordHash = ""

	return response.JSON(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"user":        output.User,
	})
}

// RequestOTP issues a one-time password for the given identifier.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var input *usecase.RequestOTPInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid OTP request input")
	}

	if err := h.uc.RequestOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "OTP sent"})
}

// VerifyOTP consumes a one-time password.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var input *usecase.VerifyOTPInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid OTP verification input")
	}

	if err := h.uc.VerifyOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "OTP verified"})
}

// GetRole returns the caller's current marketplace role.
func (h *AuthHandler) GetRole(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	role, err := h.uc.GetRole(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"role": string(role)})
}

// SelectRole sets the caller's marketplace role.
func (h *AuthHandler) SelectRole(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var input *usecase.SelectRoleInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid role input")
	}
	input.UserID = userID

	role, err := h.uc.SelectRole(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"role": string(role)})
}
