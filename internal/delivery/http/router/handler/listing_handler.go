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

// ListingHandler holds dependencies for listing-related handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateListing handles the listing creation request.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var input *usecase.CreateListingInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "Invalid listing input")
	}
	input.SellerID = userID

	listing, err := h.uc.CreateListing(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, listing)
}

// GetListing fetches a single listing by ID.
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid listing ID")
	}

	listing, err := h.uc.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, listing)
}

// BrowseListings returns a page of active listings.
func (h *ListingHandler) BrowseListings(c echo.Context) error {
	input := &usecase.BrowseListingsInput{
		Type:   c.QueryParam("type"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}

	page, err := h.uc.BrowseListings(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"items": page.Items,
		"total": page.Total,
	})
}
