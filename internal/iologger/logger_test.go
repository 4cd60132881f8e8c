package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sportsdb/gridstats/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	logDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	err := Init(logDir, cfg, false)
	require.NoError(t, err)

	slog.Info("test entry", "key", "value")

	logPath := filepath.Join(logDir, "gridstats.log")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test entry")
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitAppend(t *testing.T) {
	logDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	require.NoError(t, Init(logDir, cfg, false))
	slog.Info("first entry")

	// Re-init with append keeps earlier lines.
	require.NoError(t, Init(logDir, cfg, true))
	slog.Info("second entry")

	data, err := os.ReadFile(filepath.Join(logDir, "gridstats.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first entry")
	assert.Contains(t, string(data), "second entry")
}

func TestInitStderr(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "debug",
		Destination: "stderr",
	}
	err := Init(t.TempDir(), cfg, false)
	require.NoError(t, err)
}

func TestInitBadDir(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err := Init("/nonexistent/dir/for/logs", cfg, false)
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, parseLevel(tt.input), tt.input)
	}
}
