// Package logger builds the process-wide structured logger for the
// dashboard.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// serviceName tags every record so dashboard logs are attributable when
// aggregated alongside other services.
const serviceName = "weatherdash"

// New returns a JSON logger at the level named by LOG_LEVEL (debug,
// info, warning, error), defaulting to info.
func New() *slog.Logger {
	return NewWithLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))
}

// NewWithLevel builds the logger at an explicit level.
func NewWithLevel(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("service", serviceName)
}

func levelFromEnv(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
