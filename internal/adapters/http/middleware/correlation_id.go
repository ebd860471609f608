package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/httpclient"
)

const headerCorrelationID = "X-Correlation-ID"

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx, for this package and for the outbound
// X-Correlation-ID header.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation id, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID keeps a usable inbound X-Correlation-ID and otherwise falls
// back to the request id, so it must run after RequestID. A POS terminal
// that sends one id for a whole checkout gets it on every registry call made
// along the way.
func CorrelationID() Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !usableID(id) {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
