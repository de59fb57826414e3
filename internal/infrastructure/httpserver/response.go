package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// ErrorResponse is the body of every error reply. Clients look at the
// message field only; the HTTP status carries the error class.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError lets application errors define their own HTTP representation.
type HTTPError interface {
	error
	HTTPStatus() int
	HTTPMessage() string
}

// RespondJSON sends a JSON response with the given status code.
func RespondJSON(c echo.Context, code int, data any) error {
	return c.JSON(code, data)
}

// RespondOK sends a 200 OK response with data.
func RespondOK(c echo.Context, data any) error {
	return RespondJSON(c, http.StatusOK, data)
}

// RespondCreated sends a 201 Created response with data.
func RespondCreated(c echo.Context, data any) error {
	return RespondJSON(c, http.StatusCreated, data)
}

// RespondError sends an error response based on the error type.
func RespondError(c echo.Context, err error) error {
	code, message := mapError(err)
	return c.JSON(code, ErrorResponse{Message: message})
}

// RespondErrorMessage sends an error response with a specific status and message.
func RespondErrorMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Message: message})
}

// mapError maps domain errors to HTTP status codes and client messages.
func mapError(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.HTTPStatus(), httpErr.HTTPMessage()
	}

	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "resource not found"

	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict, "resource already exists"

	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input data"

	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"

	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "access denied"

	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}
