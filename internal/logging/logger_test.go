package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelWarn, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestShuffleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, nil, "warn message")
	logger.Error(ctx, errors.New("boom"), "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "error=boom")
}

func TestShuffleLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("validator").
		With("run_id", "abc").
		Warn(context.Background(), nil, "mismatch", "index", 4, "char", "b")

	line := strings.TrimSpace(buf.String())
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &record))

	assert.Equal(t, "mismatch", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "validator", record["component"])
	assert.Equal(t, "abc", record["run_id"])
	assert.Equal(t, float64(4), record["index"])
	assert.Equal(t, "b", record["char"])
}

func TestShuffleLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})

	_ = parent.With("child", true)
	parent.Info(context.Background(), "from parent")

	assert.NotContains(t, buf.String(), "child=true")
}

func TestNewLogger_NilConfig(t *testing.T) {
	logger := NewLogger(nil)
	require.NotNil(t, logger)
	assert.Equal(t, LevelWarn, logger.level)
}

func TestNop(t *testing.T) {
	logger := NewNop()
	assert.NotPanics(t, func() {
		logger.With("k", "v").WithComponent("x").Error(context.Background(), errors.New("e"), "m")
	})
}
