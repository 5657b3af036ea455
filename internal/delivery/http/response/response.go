package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Wire statuses. The clients of this service expect French status labels.
const (
	StatusSuccess = "Succès"
	StatusError   = "Erreur"
)

// Response is the stable API response shape: every reply, success or
// failure, carries a status label and a human-readable message.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success successful response
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Message: message,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Status:  StatusError,
		Message: message,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
