// Package logging builds the service logger and carries request-scoped
// loggers through contexts.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "tax id verified")
//
// Error logs carry the operation, the entity ids involved, and the full
// error chain:
//
//	logger.ErrorContext(ctx, "tax ID lookup failed",
//	    slog.String("operation", "CheckTaxID"),
//	    slog.String("context_id", contextID),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
)

type loggerKey struct{}

// New returns a logger writing cfg.Format ("text", otherwise JSON) to w at
// cfg.Level. Unknown levels fall back to info. Debug loggers also record
// the source location. Every handler redacts credentials, see redact.go.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := Level(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Level parses name the way slog does ("debug", "WARN", "info+2"), falling
// back to info.
func Level(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
