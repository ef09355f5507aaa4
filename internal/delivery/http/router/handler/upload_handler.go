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

// UploadHandler holds dependencies for file-upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload receives one multipart file and stores it in the document bucket.
// Size and MIME checks happen in the use case before any write.
func (h *UploadHandler) Upload(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "A 'file' form field is required")
	}

	documentType := c.FormValue("documentType")
	if documentType == "" {
		documentType = "document"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			h.logger.Warn("Failed to close uploaded file", slog.Any("error", closeErr))
		}
	}()

	output, err := h.uc.Upload(c.Request().Context(), &usecase.UploadInput{
		UserID:       userID,
		DocumentType: documentType,
		FileName:     fileHeader.Filename,
		Size:         fileHeader.Size,
		Body:         src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, map[string]any{
		"key":         output.Key,
		"contentType": output.ContentType,
		"size":        output.Size,
	})
}
