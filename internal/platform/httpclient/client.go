// Package httpclient is the outbound HTTP stack used to reach the tax ID
// registry. A request passes, in order, through:
//
//	circuit breaker → rate limiter → id headers → client span → retry loop
//
// Usage:
//
//	client := httpclient.New(&cfg.Client, "digifact", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the request and correlation ids with
// WithRequestID and WithCorrelationID so they follow the call downstream.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	replayableKey    struct{}
)

// WithRequestID stores the inbound request id for X-Request-ID propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation id for X-Correlation-ID
// propagation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Replayable marks a request as safe to send more than once even though its
// method is not idempotent. The registry login POST is one such request.
func Replayable(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), replayableKey{}, true))
}

func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	v, _ := req.Context().Value(replayableKey{}).(bool)
	return v
}

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil: unlimited
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the downstream identified by name, which is used
// as the breaker name, the span peer.service and the metrics label. A nil
// metrics disables metric recording.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller that gave up says nothing about the downstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return c
}

// Do sends req. On success the caller owns resp.Body. When the retry budget
// runs out on a retryable status, both resp and err are set and the caller
// must still close resp.Body. Breaker rejections and network failures
// return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	replay := replayable(req)

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		setIDHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var err error
		resp, err = c.send(spanCtx, req.WithContext(spanCtx), replay)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BreakerState is "closed", "half-open" or "open".
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream name given to New.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck derives downstream health from the breaker without calling
// out: closed is healthy, half-open is degraded, open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

func setIDHeaders(ctx context.Context, req *http.Request) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan opens a client span and writes the W3C trace headers. Registry
// lookups carry tax IDs and usernames in the query string, so the span URL
// is recorded without it.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		"HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", redactedURL(req)),
			attribute.String("peer.service", c.name),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func redactedURL(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	u.User = nil
	return u.String()
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record runs outside the breaker so open-circuit rejections are counted.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, context.Canceled):
		result = "canceled"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
