package http

import (
	"errors"
	"net/http"

	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error payload returned by the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError translates a use case error into an HTTP response.
// Unrecognized errors become 500s with a generic message so internal
// details never leak to clients.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthenticated):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrAccessForbidden):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrDuplicateIdentity):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrPaymentProcessing),
		errors.Is(err, errs.ErrStorageWrite),
		errors.Is(err, errs.ErrStorageDelete):
		code = http.StatusBadGateway
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
