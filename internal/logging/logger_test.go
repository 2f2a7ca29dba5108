package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

func TestConsoleLoggerWritesHeaderAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closeFn() //nolint:errcheck

	logger = logging.NewComponentLogger(logger, "batch")
	logger.Info("video processed",
		logging.String(logging.FieldVideo, "/tmp/video/clip.mp4"),
		logging.String("output", "clip_newaudio.mp4"),
		logging.Int64("output_bytes", 2048),
		logging.Bool("shortest", true),
	)

	out := buf.String()
	for _, fragment := range []string{"INFO", "[batch]", "clip.mp4", "video processed", "Output: clip_newaudio.mp4", "Output Bytes: 2.0 kB", "Trim To Shortest: yes"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output %q", fragment, out)
		}
	}
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("probing", logging.String(logging.FieldRunID, "abc"))
	out := buf.String()
	if !strings.Contains(out, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", out)
	}
	if !strings.Contains(out, "Run: abc") {
		t.Fatalf("expected run id in debug output, got %q", out)
	}
}

func TestJSONLoggerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("transcode failed", logging.Error(errors.New("exit status 1")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "warn" {
		t.Fatalf("unexpected level %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
	if payload["error"] != "exit status 1" {
		t.Fatalf("unexpected error field %v", payload["error"])
	}
}

func TestLoggerMirrorsToFile(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "audioswitch.log")
	logger, closeFn, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf, FilePath: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("run complete", logging.Int("failed", 0))
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"run complete"`) {
		t.Fatalf("expected json record in file, got %q", content)
	}
	if !strings.Contains(buf.String(), "run complete") {
		t.Fatalf("expected console record, got %q", buf.String())
	}
}

func TestNewRejectsUnknownValues(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, _, err := logging.New(logging.Options{Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewFromConfigUsesLoggingSection(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "warn"
	logger, closeFn, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closeFn() //nolint:errcheck
	if logger.Enabled(context.Background(), -4) {
		t.Fatal("expected debug disabled at warn level")
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := services.WithRunID(context.Background(), "run-42")
	ctx = services.WithVideo(ctx, "video/a.mp4")
	logging.WithContext(ctx, logger).Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"run_id":"run-42"`) || !strings.Contains(out, `"video":"video/a.mp4"`) {
		t.Fatalf("expected context fields, got %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 8) {
		t.Fatal("expected nop logger to be disabled")
	}
	logging.NewComponentLogger(nil, "x").Info("ignored")
}
