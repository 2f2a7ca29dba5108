package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/batch"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/history"
)

// statusKind classifies a printed line for its tag and colour.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func (k statusKind) tag() string {
	switch k {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (k statusKind) color() string {
	switch k {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ansiBlue
	}
}

// outcomeStatusKind maps a per-video outcome: planned videos are
// informational, failures are errors.
func outcomeStatusKind(outcome batch.Outcome) statusKind {
	switch {
	case outcome.Err != nil:
		return statusError
	case outcome.DryRun:
		return statusInfo
	default:
		return statusOK
	}
}

func runStatusKind(status history.RunStatus) statusKind {
	switch status {
	case history.RunSucceeded:
		return statusOK
	case history.RunFailed, history.RunAborted:
		return statusError
	case history.RunCancelled:
		return statusWarn
	default:
		return statusInfo
	}
}

// renderStatusLine renders "  label:   [TAG] message" padded to a fixed label
// column. The whole line is coloured when colorize is set.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	tag := "[" + kind.tag() + "]"
	if message != "" {
		tag += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", tag)
	if !colorize {
		return line
	}
	return kind.color() + line + ansiReset
}

func renderRunHeader(runID string, colorize bool) []string {
	title := fmt.Sprintf("== Run %s ==", strings.TrimSpace(runID))
	rule := strings.Repeat("-", len(title))
	if colorize {
		return []string{ansiBlue + title + ansiReset, ansiBlue + rule + ansiReset}
	}
	return []string{title, rule}
}

// shouldColorize reports whether writer is a terminal.
func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
