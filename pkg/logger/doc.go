// Package logger builds slog loggers for command-line tools.
//
// Loggers write human-readable text records, normally to stderr so that
// stdout stays free for program output. Attributes carried by the context
// (such as a run ID) are injected by ContextExtractor functions on every
// log call:
//
//	runIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(runIDKey{}).(string); ok {
//			return slog.String("run_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(os.Stderr, slog.LevelInfo, runIDExtractor)
//	log.InfoContext(ctx, "catalog loaded", slog.Int("languages", 2))
//	// time=... level=INFO msg="catalog loaded" languages=2 run_id=...
//
// # Sentry Integration
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a
// DSN is configured, and returns a flush function for the exit path:
//
//	log, flush := logger.NewWithSentry(cfg, os.Stderr, slog.LevelInfo)
//	defer flush()
//
// An empty DSN, or a failed Sentry initialization, falls back to plain
// text logging.
//
// NewNope returns a logger that discards everything; it is the default for
// library code and tests.
package logger
