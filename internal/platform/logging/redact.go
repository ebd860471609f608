package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
)

// sensitiveHeaders are lowercase header names whose values never reach the
// logs, whether logged by the HTTP middleware or as attribute names.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
}

// IsSensitiveHeader reports whether the named header carries credentials.
// The match ignores case.
func IsSensitiveHeader(name string) bool {
	for _, h := range sensitiveHeaders {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Segments of at least 10 characters keep version strings like 1.2.3
	// out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	inlineKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey|password)\s*[:=]\s*\S+`)
)

// redactor builds the ReplaceAttr hook shared by every handler. Credentials
// are matched by attribute name and by value shape; a
// config.DigifactCredential logged whole is redacted by type.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+12)
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h))
	}

	opts = append(opts,
		// Digifact login payload and token response keys.
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("Token"),
		masq.WithFieldName("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithFieldPrefix("fel_"),

		masq.WithType[config.DigifactCredential](),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineKeyPattern),
	)
	return masq.New(opts...)
}
