package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/logging"
)

// Commit runs the queued actions in order. When one fails, the actions that
// already succeeded are rolled back newest first and the failure is returned
// wrapped with the action's description. Rollback errors are logged only.
//
// The RequestContext is committed afterwards regardless of the outcome.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range items {
		logger.DebugContext(ctx, "executing staged action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, logger, items[:i])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

func rollback(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", done[i].Description()),
				slog.Any("error", err),
			)
		}
	}
}
