package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/beetracker-backend/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" Warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, config.LogConfig{Level: tt.level, Format: "text"}, false)

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			below := tt.wantSlog - 1
			logger.Log(context.TODO(), below, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, got: %s", tt.wantSlog, below, buf.String())
			}
		})
	}
}

func TestNewLogger_Formats(t *testing.T) {
	tests := []struct {
		format   string
		terminal bool
		wantJSON bool
	}{
		{"json", true, true},
		{"JSON", false, true},
		{"text", false, false},
		{"auto", true, false},
		{"auto", false, true},
		{"", true, false},
		{"", false, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		newLogger(&buf, config.LogConfig{Level: "info", Format: tt.format}, tt.terminal).Info("hello")

		var m map[string]any
		isJSON := json.Unmarshal(buf.Bytes(), &m) == nil
		if isJSON != tt.wantJSON {
			t.Errorf("format %q terminal=%v: json=%v, want %v (%s)", tt.format, tt.terminal, isJSON, tt.wantJSON, buf.String())
		}
		if isJSON {
			if _, ok := m["source"]; ok {
				t.Errorf("format %q: json output should not include source", tt.format)
			}
		} else if !strings.Contains(buf.String(), "source=") {
			t.Errorf("format %q: text output should include source", tt.format)
		}
	}
}
