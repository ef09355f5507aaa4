// Package response implements the wire contract of the HTTP API: success
// responses return the payload directly, failures return {"error": message}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error envelope every failing endpoint returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a successful response with the given payload.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes the error envelope with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// BindingError reports a request body that could not be bound.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}
