package gateway

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

func registerMiddlewares(e *echo.Echo, logger *slog.Logger) {
	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(correlate())
	e.Use(requestLog(logger))
}

// correlate makes the request id the correlation id of every event appended while serving the request.
func correlate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID, err := uuid.Parse(c.Response().Header().Get(echo.HeaderXRequestID))
			if err == nil {
				c.SetRequest(c.Request().WithContext(shell.WithCorrelationID(c.Request().Context(), requestID)))
			}

			return next(c)
		}
	}
}

func requestLog(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.InfoContext(c.Request().Context(), "http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"ip", c.RealIP(),
			)

			return nil
		}
	}
}
