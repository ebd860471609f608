package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxInboundIDLen bounds ids accepted from clients.
	maxInboundIDLen = 128
)

type requestIDKey struct{}

// WithRequestID stores id in ctx, for this package and for the outbound
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID reuses the caller's X-Request-ID when it is usable and
// generates a UUID otherwise. The id is echoed in the response.
func RequestID() Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !usableID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// usableID accepts non-empty ids of visible ASCII up to maxInboundIDLen
// bytes. Anything else would end up verbatim in logs and registry headers.
func usableID(id string) bool {
	if id == "" || len(id) > maxInboundIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
