package http

import (
	"errors"
	"log/slog"
	"net/http"

	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to a response code. Domain sentinels
// are checked before the generic errs categories because they are wrapped in them.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, queries.ErrJournalDisabled),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidState),
		errors.Is(err, order.ErrInvalidDiscount),
		errors.Is(err, order.ErrInvalidAddOn),
		errors.Is(err, order.ErrIndexOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors that escape the handlers, such as routing
// misses, parameter binding failures and rate limiting, in the Error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled request error", "path", ctx.Path(), "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}
