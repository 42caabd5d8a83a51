package http

import (
	"errors"
	"log/slog"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errWorkerIDRequired = errs.NewValueIsRequiredError("X-Worker-ID header or worker_id query parameter")

// statusOf maps use case errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoOrdersAvailable):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"route", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors that escape handlers, such as parameter binding failures
// and unknown routes, in the API error format.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "route", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
