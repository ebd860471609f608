package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/telemetry"
)

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the server request metrics. Once chi
// has matched a route the span is renamed after the route pattern, so order
// and partner ids stay out of span names and metric labels. A nil metrics
// skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.GetTracerProvider().Tracer("middleware").Start(ctx,
				"HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.Path),
				),
			)
			defer span.End()

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			if route != "" {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			span.SetAttributes(attribute.Int("http.status_code", rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			recordServer(ctx, metrics, r.Method, route, rec.status, time.Since(start))
		})
	}
}

// routePattern is the chi pattern that served r, or "" when r was not
// routed by chi.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

func recordServer(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	if route == "" {
		route = "unmatched"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
