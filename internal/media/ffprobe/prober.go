package ffprobe

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

const defaultBinary = "ffprobe"

// Prober reads container durations with ffprobe. It is stateless; each call
// spawns one process and nothing is retried.
type Prober struct {
	binary string
	runner ffmpeg.Runner
}

// NewProber returns a Prober for binary (default "ffprobe"). A nil runner
// uses ffmpeg.ExecRunner without a timeout.
func NewProber(binary string, runner ffmpeg.Runner) *Prober {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = defaultBinary
	}
	if runner == nil {
		runner = ffmpeg.ExecRunner{}
	}
	return &Prober{binary: binary, runner: runner}
}

// Binary returns the configured ffprobe executable.
func (p *Prober) Binary() string {
	return p.binary
}

// DurationArgs returns the ffprobe arguments that print only the container
// duration in seconds.
func DurationArgs(path string) []string {
	return []string{"-v", "error", "-show_entries", "format=duration", "-of", "default=nw=1:nk=1", path}
}

// Duration returns the container duration of path in seconds. Failures are
// tagged with services.ErrProbe.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	if strings.TrimSpace(path) == "" {
		return 0, services.Wrap(services.ErrProbe, "probe", "duration", "empty path", nil)
	}
	result, err := p.runner.Run(ctx, ffmpeg.Command{Binary: p.binary, Args: DurationArgs(path)})
	if err != nil {
		return 0, services.Wrap(services.ErrProbe, "probe", "duration", fmt.Sprintf("ffprobe failed for %s", path), err)
	}
	seconds, err := ParseDuration(string(result.Stdout))
	if err != nil {
		return 0, services.Wrap(services.ErrProbe, "probe", "duration", fmt.Sprintf("could not parse duration for %s", path), err)
	}
	return seconds, nil
}

// ParseDuration parses ffprobe's duration output. Surrounding whitespace is
// ignored; anything that is not a finite, non-negative number is an error.
func ParseDuration(output string) (float64, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return 0, fmt.Errorf("empty duration output")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", trimmed)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("invalid duration %q", trimmed)
	}
	return value, nil
}
