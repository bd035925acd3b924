package logging

import (
	"log/slog"
	"os"
)

// New creates a structured logger with text output on stderr.
// app: application name attached to every record.
// level: one of "debug", "info", "warn", "error" (default: "info").
func New(app string, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler).With(slog.String("app", app))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
