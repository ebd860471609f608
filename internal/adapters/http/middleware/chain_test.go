package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/checkout-fel/internal/app/context"
)

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.Chain()(statusHandler(http.StatusAccepted)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestChain_FirstIsOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) middleware.Func {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+">")
				next.ServeHTTP(w, r)
				order = append(order, "<"+name)
			})
		}
	}

	middleware.Chain(trace("a"), trace("b"), trace("c"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, []string{"a>", "b>", "c>", "handler", "<c", "<b", "<a"}, order)
}

func TestChain_ServerPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.AppContext(logger),
		middleware.OpenTelemetry(nil),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		assert.NotEmpty(t, middleware.RequestIDFromContext(ctx))
		assert.NotEmpty(t, middleware.CorrelationIDFromContext(ctx))
		assert.NotNil(t, appctx.FromContext(ctx))
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/current", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, rec.Header().Get("X-Request-ID"), rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, buf.String(), "request completed")
}
