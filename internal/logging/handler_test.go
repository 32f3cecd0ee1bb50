package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandlerHandle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	now := time.Now()
	logger.Info("hello world", "foo", "value")

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected level INFO in output, got: %q", output)
	}
	if !strings.Contains(output, "hello world") {
		t.Errorf("expected message in output, got: %q", output)
	}
	if !strings.Contains(output, "foo=value") {
		t.Errorf("expected attribute in output, got: %q", output)
	}
	if expected := now.Format(time.Kitchen); !strings.Contains(output, expected) {
		t.Errorf("expected time %q in output, got: %q", expected, output)
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	logger := slog.New(h).With("common", "attr")

	logger.Info("message", "local", "val")

	output := buf.String()
	if !strings.Contains(output, "common=attr") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "local=val") {
		t.Errorf("expected local attribute in output, got: %q", output)
	}
}

func TestHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	logger := slog.New(h).WithGroup("update")

	logger.Info("message", "from", "0.1")

	if output := buf.String(); !strings.Contains(output, "update.from=0.1") {
		t.Errorf("expected group-prefixed attribute in output, got: %q", output)
	}
}

func TestHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandlerNoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, ":") && strings.Index(output, ":") < 10 {
		t.Errorf("expected no time in output, got: %q", output)
	}
}

func TestHandlerTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})
	logger := slog.New(h)

	logger.Log(context.Background(), LevelTrace, "deep detail")

	if output := buf.String(); !strings.Contains(output, "TRACE") {
		t.Errorf("expected TRACE level in output, got: %q", output)
	}
}
