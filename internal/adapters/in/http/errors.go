package http

import (
	"errors"
	"net/http"

	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to their HTTP status. Each error kind has
// a fixed status; anything unrecognized is a 500 with a generic body so
// internals never leak to callers.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}
