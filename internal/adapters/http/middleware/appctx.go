package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/checkout-fel/internal/app/context"
)

// AppContext opens one unit of work per request. Services join it with
// appctx.ForRequest: draft reads made while verifying a tax ID are memoized
// in it and the draft save is staged on it. Writes still queued when the
// handler returns were never committed and are reported as dropped.
//
// Register it after CorrelationID so the unit of work carries both ids.
func AppContext(logger *slog.Logger) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))

			if n := rc.Pending(); n > 0 && !rc.Committed() {
				logger.WarnContext(r.Context(), "request finished with uncommitted writes",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.Int("dropped", n),
				)
			}
		})
	}
}
