package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery recovers from panics in handlers, logs the stack trace, and
// returns a generic internal error to the client
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)

					logger.Error("panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
						"stack", string(debug.Stack()),
					)

					errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					err = c.JSON(http.StatusInternalServerError, errorResponse)
				}
			}()

			return next(c)
		}
	}
}
