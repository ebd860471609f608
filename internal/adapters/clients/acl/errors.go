// Package acl keeps the tax ID registry's wire model out of the domain.
// Registry DTOs and their translation live in acl/digifact; this package
// holds the registry client, the shared request plumbing and the mapping of
// failed responses onto domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

// maxErrorBodySize caps how much of a failed response is read.
const maxErrorBodySize = 1 << 20

// errorBody accepts RFC 9457 problem documents and the registry's own
// envelope, which puts its text in a capitalized "Message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"Message"`
	Errors  []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

func (b errorBody) text(status int) string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	default:
		return http.StatusText(status)
	}
}

// sentinelFor maps a failed registry status to a domain sentinel. A nil
// return means the status has no domain meaning.
func sentinelFor(status int) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return domain.ErrUnavailable
	}
	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

// TranslateHTTPError turns a failed registry response into a domain error.
// Field-level problems on a 400 or 422 come back as *domain.ValidationError;
// 401 and 403 as domain.ErrForbidden, which the client treats as a stale
// token; throttling, timeouts and 5xx as domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	body := readErrorBody(resp)
	text := body.text(resp.StatusCode)

	sentinel := sentinelFor(resp.StatusCode)
	switch {
	case sentinel == nil:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, text)
	case sentinel == domain.ErrValidation && len(body.Errors) > 0:
		fields := make(map[string]string, len(body.Errors))
		for _, e := range body.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	default:
		return fmt.Errorf("%s: %w", text, sentinel)
	}
}

// readErrorBody decodes a JSON error body. Anything unreadable yields the
// zero value.
func readErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/json" && mt != "application/problem+json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	var b errorBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return errorBody{}
	}
	return b
}
