package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"clinic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLogLevel("verbose")
	require.Error(t, err)
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, config.Log{Level: "warn"})
	require.NoError(t, err)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger.Warn("slot already booked", slog.String("doctor_id", "1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "slot already booked", line["msg"])
	assert.Equal(t, "1", line["doctor_id"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, config.Log{Pretty: true, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("session restored")
	assert.Contains(t, buf.String(), "msg=\"session restored\"")
}
