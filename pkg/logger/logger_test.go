package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromEnv("debug"))
	assert.Equal(t, slog.LevelWarn, levelFromEnv("WARNING"))
	assert.Equal(t, slog.LevelWarn, levelFromEnv("warn"))
	assert.Equal(t, slog.LevelError, levelFromEnv(" error "))
	assert.Equal(t, slog.LevelInfo, levelFromEnv(""))
	assert.Equal(t, slog.LevelInfo, levelFromEnv("verbose"))
}

func TestNewWithLevel(t *testing.T) {
	log := NewWithLevel(slog.LevelDebug)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))

	log = NewWithLevel(slog.LevelError)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
}
