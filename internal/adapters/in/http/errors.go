package http

import (
	"errors"
	"net/http"

	"tacoshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON error payload returned by every failing route.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusForError maps domain error kinds to HTTP status codes. Unrecognized
// errors are treated as internal failures.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDependencyUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := StatusForError(err)
	return ctx.JSON(code, ErrorBody{
		Code:    code,
		Message: err.Error(),
	})
}
