package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name. Values of
// credential headers (see logging.IsSensitiveHeader) are replaced; multiple
// values are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.IsSensitiveHeader(name) {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
