package converter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type runIDKey struct{}

// WithRunID stores a fresh run ID in ctx.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey{}, uuid.NewString())
}

// RunID returns the run ID stored in ctx, if any.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// RunIDExtractor adds the run ID to log records. It satisfies
// logger.ContextExtractor.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := RunID(ctx); id != "" {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}
