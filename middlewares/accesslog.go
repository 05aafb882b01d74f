package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ariaml/ariaml-go/internal"
)

// AccessLog returns middleware that logs one line per request with the
// negotiated render mode, the final status and the time spent.
// Server errors are logged at error level, client errors at warn level.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				status = http.StatusInternalServerError
				if he := internal.AsHTTPError(err); he != nil {
					status = he.Code
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.String("mode", c.Decision().Mode.String()),
				slog.Int64("bytes", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request", attrs...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
