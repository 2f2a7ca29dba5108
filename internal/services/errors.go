package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrSelection     = errors.New("audio selection error")
	ErrCombine       = errors.New("audio combine error")
	ErrProbe         = errors.New("probe error")
	ErrExternalTool  = errors.New("external tool error")
	ErrOutputExists  = errors.New("output exists")
	ErrReplace       = errors.New("replace error")
	ErrBatch         = errors.New("batch failed")
)

// Exit codes returned by the CLI.
const (
	ExitOK          = 0
	ExitBatchFailed = 1
	ExitFatal       = 2
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err belongs to a class that aborts the run before or
// outside per-video processing.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrSelection),
		errors.Is(err, ErrCombine),
		errors.Is(err, ErrProbe):
		return true
	default:
		return false
	}
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBatch):
		return ExitBatchFailed
	case IsFatal(err):
		return ExitFatal
	default:
		return ExitBatchFailed
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
