package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "batch", "transcode", "ffmpeg failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"batch", "transcode", "ffmpeg failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrSelection, "", "", "", nil)
	if !errors.Is(err, services.ErrSelection) {
		t.Fatalf("expected selection marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, services.ExitOK},
		{"batch", fmt.Errorf("%w: 2 video(s) failed", services.ErrBatch), services.ExitBatchFailed},
		{"configuration", services.Wrap(services.ErrConfiguration, "deps", "", "missing ffmpeg", nil), services.ExitFatal},
		{"selection", services.Wrap(services.ErrSelection, "audio", "", "ambiguous", nil), services.ExitFatal},
		{"combine", services.Wrap(services.ErrCombine, "combine", "", "empty", nil), services.ExitFatal},
		{"probe", services.Wrap(services.ErrProbe, "probe", "", "bad output", nil), services.ExitFatal},
		{"other", errors.New("unexpected"), services.ExitBatchFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
