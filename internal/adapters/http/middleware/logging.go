package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/logging"
)

// Logging puts a logger carrying the request and correlation ids into the
// request context and logs one line per completed request. The level follows
// the status: error for 5xx, warn for 4xx, info otherwise. Redacted request
// headers are logged at debug when the request starts.
func Logging(logger *slog.Logger) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(r.Header)...)},
				)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			reqLogger.LogAttrs(ctx, levelFor(rec.status), "request completed", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

