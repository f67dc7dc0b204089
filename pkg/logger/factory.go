package logger

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to out at the given level, with
// optional context extractors.
func New(out io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}
