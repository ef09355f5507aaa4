package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"zeemart/internal/delivery/http/middleware"
	"zeemart/internal/delivery/http/response"
	"zeemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WalletHandler holds dependencies for wallet-related handlers.
type WalletHandler struct {
	uc     usecase.WalletUsecase
	logger *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWallet returns the caller's wallet snapshot.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	wallet, err := h.uc.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, wallet)
}

// Deposit starts a wallet top-up with the payment provider.
func (h *WalletHandler) Deposit(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var input *usecase.DepositInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid deposit input")
	}
	input.UserID = userID

	output, err := h.uc.Deposit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, map[string]any{
		"reference":   output.Reference,
		"checkoutUrl": output.CheckoutURL,
		"qrCode":      base64.StdEncoding.EncodeToString(output.QRCodePNG),
		"amount":      output.Amount,
	})
}

// ConfirmDeposit settles a pending deposit by its provider reference.
func (h *WalletHandler) ConfirmDeposit(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var input *usecase.ConfirmDepositInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid confirmation input")
	}
	input.UserID = userID

	tx, err := h.uc.ConfirmDeposit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, tx)
}

// ListTransactions pages through the caller's ledger, newest first.
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	input := &usecase.ListTransactionsInput{
		UserID: userID,
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}

	page, err := h.uc.ListTransactions(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items": page.Items,
		"total": page.Total,
	})
}
