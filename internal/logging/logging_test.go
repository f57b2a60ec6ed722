package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/raysh454/xssrisk/internal/logging"
)

func TestSlogLogger_JSONFieldsAndComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.NewLogger(logging.Config{Level: "debug", Format: "json"}, &buf)

	child := l.With(logging.Field{Key: "component", Value: "engine"})
	child.Warn("enhancement failed", logging.Field{Key: "error", Value: errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "enhancement failed" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
	if entry["level"] != "WARN" {
		t.Errorf("unexpected level %v", entry["level"])
	}
	if entry["component"] != "engine" {
		t.Errorf("expected persistent component field, got %v", entry["component"])
	}
	if entry["error"] != "boom" {
		t.Errorf("expected error rendered as string, got %v", entry["error"])
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.NewLogger(logging.Config{Level: "warn", Format: "text"}, &buf)

	l.Info("hidden")
	l.Error("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("error line missing: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
