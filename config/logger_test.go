package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantLevel slog.Level
	}{
		{"default info", "development", "", slog.LevelInfo},
		{"debug", "development", "debug", slog.LevelDebug},
		{"upper case warn", "production", "WARN", slog.LevelWarn},
		{"unknown falls back", "production", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.env, tt.level)
			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel))
			assert.False(t, logger.Enabled(context.Background(), tt.wantLevel-1))
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "production", "").Info("started", "port", "8080")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "started", line["msg"])
	assert.Equal(t, "fitstudio", line["service"])
	assert.Equal(t, "8080", line["port"])
}
