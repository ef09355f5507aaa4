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

// AdHandler serves the public live-ad feed and the admin ads CRUD.
type AdHandler struct {
	uc     usecase.AdUsecase
	logger *slog.Logger
}

// NewAdHandler is the constructor for AdHandler, injected by Fx.
func NewAdHandler(uc usecase.AdUsecase, logger *slog.Logger) *AdHandler {
	return &AdHandler{
		uc:     uc,
		logger: logger,
	}
}

// BrowseLiveAds returns active ads whose display window contains now.
func (h *AdHandler) BrowseLiveAds(c echo.Context) error {
	ads, err := h.uc.BrowseLiveAds(c.Request().Context(), &usecase.BrowseAdsInput{
		Placement: c.QueryParam("placement"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ads)
}

// ListAds returns all ads for the admin console.
func (h *AdHandler) ListAds(c echo.Context) error {
	ads, err := h.uc.ListAds(c.Request().Context(), c.QueryParam("placement"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ads)
}

// CreateAd creates an ad.
func (h *AdHandler) CreateAd(c echo.Context) error {
	var input *usecase.AdInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid ad input")
	}

	ad, err := h.uc.CreateAd(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, ad)
}

// UpdateAd updates an existing ad.
func (h *AdHandler) UpdateAd(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ad ID")
	}

	var input *usecase.AdInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid ad input")
	}

	ad, err := h.uc.UpdateAd(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ad)
}

// DeleteAd removes an ad.
func (h *AdHandler) DeleteAd(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid ad ID")
	}

	if err := h.uc.DeleteAd(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "Ad deleted"})
}
