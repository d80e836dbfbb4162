package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	logger.Info(context.Background(), "project created", "project", "my-app")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "project created", entry["msg"])
	assert.Equal(t, "my-app", entry["project"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:  LevelWarn,
		Format: "text",
		Output: &buf,
	})

	logger.Debug(context.Background(), "not shown")
	logger.Info(context.Background(), "not shown either")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), nil, "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	scoped := logger.WithComponent("scaffolding")
	scoped.Error(context.Background(), errors.New("boom"), "generation failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scaffolding", entry["component"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	scoped := logger.With("script", "dev")
	scoped.Info(context.Background(), "script added")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dev", entry["script"])
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()

	// Must not panic, and chaining keeps discarding.
	logger.Info(context.Background(), "ignored")
	logger.Error(context.Background(), errors.New("ignored"), "ignored")

	assert.Same(t, logger, logger.With("k", "v"))
	assert.Same(t, logger, logger.WithComponent("x"))
}
