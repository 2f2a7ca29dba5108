package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Command describes one external tool invocation.
type Command struct {
	Binary string
	Args   []string
}

// String renders the command for logs.
func (c Command) String() string {
	return strings.TrimSpace(c.Binary + " " + strings.Join(c.Args, " "))
}

// Result holds captured process output.
type Result struct {
	Stdout []byte
	Stderr string
}

// Runner executes external tools. Implementations block until the process exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec. Stderr is always captured; when Tee is
// set it is also streamed there as it arrives (ffmpeg progress lines).
type ExecRunner struct {
	Timeout time.Duration
	Tee     io.Writer
}

// Run executes cmd and returns a *ToolError on failure.
func (r ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	proc := exec.CommandContext(ctx, cmd.Binary, cmd.Args...)
	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	if r.Tee != nil {
		proc.Stderr = io.MultiWriter(&stderr, r.Tee)
	} else {
		proc.Stderr = &stderr
	}

	err := proc.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = errors.Join(ctxErr, err)
	}
	return result, &ToolError{
		Binary:     cmd.Binary,
		Args:       append([]string(nil), cmd.Args...),
		ExitCode:   exitCode,
		StderrTail: Tail(result.Stderr, stderrTailLines),
		Err:        err,
	}
}
