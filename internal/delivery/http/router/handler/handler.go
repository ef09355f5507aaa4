// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"zeemart/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// intQuery parses an optional integer query parameter, returning 0 when the
// parameter is absent or malformed. Range normalization happens in the
// use case layer.
func intQuery(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
