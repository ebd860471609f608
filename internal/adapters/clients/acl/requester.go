package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/httpclient"
)

// maxResponseBodySize bounds successful response bodies.
const maxResponseBodySize = 4 << 20

// Call describes one outbound request.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header

	// Body is marshaled to JSON when non-nil.
	Body any
	// Out receives the decoded JSON response when non-nil.
	Out any
	// WantStatus is the expected status code; zero means 200.
	WantStatus int
	// Replayable allows a non-idempotent call to be retried.
	Replayable bool
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status validation, error translation, and JSON
// decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes c against the configured base URL. A status other than
// c.WantStatus is passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, c Call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	want := c.WantStatus
	if want == 0 {
		want = http.StatusOK
	}
	return r.execute(req, want, c.Out)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// HealthCheck reports the underlying client's breaker health.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) newRequest(ctx context.Context, c Call) (*http.Request, error) {
	target := r.client.BaseURL() + c.Path
	if len(c.Query) > 0 {
		target += "?" + c.Query.Encode()
	}

	body := io.Reader(http.NoBody)
	if c.Body != nil {
		raw, err := json.Marshal(c.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", c.Method, c.Path, err)
	}
	for k, vs := range c.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.Replayable {
		req = httpclient.Replayable(req)
	}

	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, out any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still return the response.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(out); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
