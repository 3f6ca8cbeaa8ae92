package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"warn+2", slog.LevelWarn + 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := logging.ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	for _, input := range []string{"", "trace", "loud"} {
		_, err := logging.ParseLevel(input)
		assert.ErrorContains(t, err, "unknown log level", "input %q", input)
	}
}

func TestParseFormat(t *testing.T) {
	format, err := logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, format)

	format, err = logging.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatText, format)

	_, err = logging.ParseFormat("yaml")
	assert.ErrorContains(t, err, `unknown log format "yaml"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, slog.LevelWarn, cfg.Level)
	assert.Equal(t, logging.FormatText, cfg.Format)
	assert.Same(t, os.Stderr, cfg.Output)

	var buf bytes.Buffer
	cfg.Output = &buf
	logger := logging.New(cfg)
	logger.Info("hidden")
	logger.Warn("duplicate tag helper ignored", "descriptor", "App.Bold")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "descriptor=App.Bold")
}

func TestNew(t *testing.T) {
	t.Run("json output honours level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(logging.Config{
			Level:  slog.LevelInfo,
			Format: logging.FormatJSON,
			Output: &buf,
		})

		logger.Debug("hidden")
		logger.Info("binding resolved", "tagName", "div")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "binding resolved", entry["msg"])
		assert.Equal(t, "div", entry["tagName"])
	})

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(logging.Config{Level: slog.LevelDebug, Output: &buf})
		logger.Debug("registered", "descriptor", "FormTagHelper")
		assert.Contains(t, buf.String(), "descriptor=FormTagHelper")
	})
}

func TestNop(t *testing.T) {
	logger := logging.Nop()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.Same(t, logger, logging.OrNop(logger))
	assert.NotNil(t, logging.OrNop(nil))
}
