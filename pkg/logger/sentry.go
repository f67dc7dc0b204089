package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// flushTimeout bounds how long pending Sentry events are awaited on exit.
const flushTimeout = 2 * time.Second

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN string `env:"SENTRY_DSN"`
	// Environment is left to the Sentry SDK when empty.
	Environment string `env:"SENTRY_ENVIRONMENT"`
	// MinLevel is the lowest level stored as a Sentry log entry, e.g. WARN or ERROR.
	// Errors always create Sentry events.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger that writes to out and reports to Sentry.
// If DSN is empty, only out is used. The returned flush function waits for
// queued events and must be called before the process exits.
func NewWithSentry(cfg SentryConfig, out io.Writer, level slog.Level, extractors ...ContextExtractor) (*slog.Logger, func()) {
	textHandler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(textHandler, extractors...)), func() {}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(textHandler).Warn("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(textHandler, extractors...)), func() {}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(textHandler, sentryHandler)

	return slog.New(NewLogHandlerDecorator(combined, extractors...)), func() {
		sentry.Flush(flushTimeout)
	}
}

// sentryLogLevels lists the standard levels at or above minLevel.
// Error is always included.
func sentryLogLevels(minLevel slog.Level) []slog.Level {
	levels := make([]slog.Level, 0, 4)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if level >= minLevel {
			levels = append(levels, level)
		}
	}
	return append(levels, slog.LevelError)
}
