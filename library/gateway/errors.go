package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const msgInternalError = "internal server error"

var errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")

// StatusOf maps an error returned by a handler to its HTTP status.
func StatusOf(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, core.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrConflict),
		errors.Is(err, core.ErrInvalidState),
		errors.Is(err, core.ErrUnavailable),
		errors.Is(err, eventstore.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageOf(err error, status int) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}

		return http.StatusText(httpErr.Code)
	}

	switch {
	case status >= http.StatusInternalServerError:
		return msgInternalError
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		return "the request collided with a concurrent change, please retry"
	default:
		return core.Reason(err)
	}
}

// errorHandler renders every error as {"message": ...}. Server errors are logged, their cause never leaves the process.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := StatusOf(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err.Error(),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, message(messageOf(err, status)))
		}

		if err != nil {
			logger.ErrorContext(c.Request().Context(), "writing error response failed", "error", err.Error())
		}
	}
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func message(msg string) messageResponse {
	return messageResponse{Message: msg}
}
