package combine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/audio"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

const timestampLayout = "2006.01.02-15.04.05"

// Options configures the encoder used for the combined track.
type Options struct {
	Binary  string
	Codec   string
	Quality int
}

// Combiner concatenates MP3 fragments into a single track with ffmpeg's
// concat demuxer.
type Combiner struct {
	opts   Options
	runner ffmpeg.Runner
	logger *slog.Logger
}

// New constructs a Combiner. Empty option fields fall back to ffmpeg,
// libmp3lame, and quality 2.
func New(opts Options, runner ffmpeg.Runner, logger *slog.Logger) *Combiner {
	if strings.TrimSpace(opts.Binary) == "" {
		opts.Binary = "ffmpeg"
	}
	if strings.TrimSpace(opts.Codec) == "" {
		opts.Codec = "libmp3lame"
	}
	if runner == nil {
		runner = ffmpeg.ExecRunner{}
	}
	return &Combiner{
		opts:   opts,
		runner: runner,
		logger: logging.NewComponentLogger(logger, "combine"),
	}
}

// TimestampName returns the file name used for a combined track created at t.
func TimestampName(t time.Time) string {
	return t.Format(timestampLayout) + audio.Extension
}

// Fragments returns the MP3 files in inputDir in concatenation order.
func Fragments(inputDir string) ([]string, error) {
	candidates, err := audio.ListMP3(inputDir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.Path
	}
	return paths, nil
}

// Combine concatenates every MP3 in inputDir, ordered by file name, into
// output. Parent directories of output are created only when there is
// something to combine. The concat manifest lives in a private temp
// directory that is removed on every return path.
func (c *Combiner) Combine(ctx context.Context, inputDir, output string) error {
	fragments, err := Fragments(inputDir)
	if err != nil {
		return services.Wrap(services.ErrCombine, "combine", "list", "", err)
	}
	if len(fragments) == 0 {
		return services.Wrap(services.ErrCombine, "combine", "list",
			fmt.Sprintf("no MP3 files found in %s", inputDir), nil)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return services.Wrap(services.ErrCombine, "combine", "prepare", "create output directory", err)
	}

	scratch, err := os.MkdirTemp("", "audioswitch-concat-")
	if err != nil {
		return services.Wrap(services.ErrCombine, "combine", "prepare", "create scratch directory", err)
	}
	defer os.RemoveAll(scratch)

	manifest := filepath.Join(scratch, "concat.txt")
	body, err := Manifest(fragments)
	if err != nil {
		return services.Wrap(services.ErrCombine, "combine", "manifest", "", err)
	}
	if err := os.WriteFile(manifest, []byte(body), 0o600); err != nil {
		return services.Wrap(services.ErrCombine, "combine", "manifest", "write manifest", err)
	}

	c.logger.Info("combining audio fragments",
		logging.String(logging.FieldEventType, "combine_start"),
		logging.Int("fragments", len(fragments)),
		logging.String("output", output),
	)
	c.logger.Debug("concat manifest", logging.String("manifest", body))

	cmd := ffmpeg.Command{Binary: c.opts.Binary, Args: ffmpeg.ConcatArgs(manifest, output, c.opts.Codec, c.opts.Quality)}
	if _, err := c.runner.Run(ctx, cmd); err != nil {
		_ = os.Remove(output)
		return services.Wrap(services.ErrCombine, "combine", "ffmpeg", fmt.Sprintf("concatenate %d fragment(s)", len(fragments)), err)
	}

	c.logger.Info("audio fragments combined",
		logging.String(logging.FieldEventType, "combine_complete"),
		logging.String("output", output),
	)
	return nil
}

// Manifest renders the concat demuxer file list. Paths are made absolute and
// single quotes are escaped the way the demuxer expects.
func Manifest(paths []string) (string, error) {
	var b strings.Builder
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", p, err)
		}
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(filepath.ToSlash(abs), "'", `'\''`))
		b.WriteString("'\n")
	}
	return b.String(), nil
}
