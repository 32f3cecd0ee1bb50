package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("hello", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "hello") {
		t.Errorf("output missing message: %q", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("output missing attribute: %q", output)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("hello", "key", "value")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", record["msg"])
	}
	if record["key"] != "value" {
		t.Errorf("key = %v, want value", record["key"])
	}
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info message not filtered: %q", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn message filtered out: %q", output)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic and must accept records at any level.
	logger.Error("dropped")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContext(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext does not return the stored logger")
	}
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without a logger does not fall back to the default")
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	logger.Debug("captured by the test log")
}
