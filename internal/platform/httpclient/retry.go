package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/logging"
)

// jitter is the ± fraction applied to every backoff delay.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   cfg.MaxAttempts,
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay is the jittered exponential backoff before retry n (1 = first retry).
// The cap applies before jitter.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.max))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send runs the retry loop. Requests that are not replayable get a single
// attempt. A Retry-After longer than the policy's max interval ends the loop
// early and hands the throttled response back to the caller.
func (c *Client) send(ctx context.Context, req *http.Request, replay bool) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.attempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.retry.attempts
	if !replay {
		attempts = 1
	}

	var (
		lastErr error
		wait    time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, wait, lastErr); err != nil {
				return nil, err
			}
		}
		rewind(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, wait = err, c.retry.delay(n+1)
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.name)
		if n == attempts-1 {
			return resp, lastErr
		}

		wait = c.retry.delay(n + 1)
		if after, ok := retryAfter(resp.Header, time.Now()); ok {
			if after > c.retry.max {
				return resp, fmt.Errorf("%w: asked to wait %s", lastErr, after)
			}
			wait = max(wait, after)
		}
		discard(resp)
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, wait time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", redactedURL(req)),
		slog.String("peer_service", c.name),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// bufferBody drains and closes req.Body so it can be replayed.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard frees the connection for reuse.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter reads a Retry-After header given either as delay seconds or as
// an HTTP date.
func retryAfter(h http.Header, now time.Time) (time.Duration, bool) {
	v := h.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	at, err := http.ParseTime(v)
	if err != nil {
		return 0, false
	}
	return max(at.Sub(now), 0), true
}

// retryableErr rejects caller cancellation and deadlines; every other
// transport failure is worth another attempt.
func retryableErr(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus covers throttling and server errors.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
