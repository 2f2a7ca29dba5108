package ffmpeg

import (
	"fmt"
	"path/filepath"
	"strings"
)

const stderrTailLines = 12

// ToolError reports a failed ffmpeg or ffprobe invocation.
type ToolError struct {
	Binary     string
	Args       []string
	ExitCode   int
	StderrTail string
	Err        error
}

func (e *ToolError) Error() string {
	name := filepath.Base(e.Binary)
	var b strings.Builder
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, "%s exited with code %d", name, e.ExitCode)
	} else {
		fmt.Fprintf(&b, "%s failed: %v", name, e.Err)
	}
	if tail := lastLine(e.StderrTail); tail != "" {
		b.WriteString(": ")
		b.WriteString(tail)
	}
	return b.String()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Tail returns the last n non-empty lines of s. ffmpeg progress output uses
// carriage returns, so those count as line breaks too.
func Tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	kept := make([]string, 0, n)
	for i := len(lines) - 1; i >= 0 && len(kept) < n; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, "\n")
}

func lastLine(s string) string {
	return Tail(s, 1)
}
