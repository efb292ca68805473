// Package logger configures the slog loggers used by the voxtool commands.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Options selects the output format and verbosity of a logger.
type Options struct {
	// Level is the minimum level to emit, one of "debug", "info", "warn"
	// or "error". Unknown values fall back to "info".
	Level string

	// Format is "pretty" (colored, the default), "json" or "text".
	Format string
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	switch opts.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	default:
		return slog.New(NewPrettyHandler(w, handlerOpts))
	}
}

// Default returns a logger for commands that have not parsed flags yet.
func Default() *slog.Logger {
	return New(os.Stderr, Options{})
}

// ParseLevel converts a configuration string to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type loggerKey struct{}

// WithContext stores the logger in the context.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext retrieves the logger stored by WithContext, or a default
// logger when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return Default()
}
