package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/fileutil"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffprobe"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/source"
)

// Options configures per-video processing.
type Options struct {
	FFmpegBinary string
	Suffix       string
	AudioCodec   string
	InPlace      bool
	Overwrite    bool
	DryRun       bool
}

// OutcomeSink observes each outcome as soon as it is known.
type OutcomeSink interface {
	RecordOutcome(ctx context.Context, outcome Outcome)
}

// Processor replaces the audio of videos one at a time. A failure is recorded
// against its video and processing moves on to the next one.
type Processor struct {
	opts    Options
	prober  ffprobe.DurationProber
	runner  ffmpeg.Runner
	logger  *slog.Logger
	sink    OutcomeSink
	replace func(src, dst string) error
}

// NewProcessor constructs a Processor. A nil runner uses ffmpeg.ExecRunner.
func NewProcessor(opts Options, prober ffprobe.DurationProber, runner ffmpeg.Runner, logger *slog.Logger) *Processor {
	if strings.TrimSpace(opts.FFmpegBinary) == "" {
		opts.FFmpegBinary = "ffmpeg"
	}
	if runner == nil {
		runner = ffmpeg.ExecRunner{}
	}
	return &Processor{
		opts:    opts,
		prober:  prober,
		runner:  runner,
		logger:  logging.NewComponentLogger(logger, "batch"),
		replace: fileutil.Replace,
	}
}

// WithSink registers an observer for outcomes.
func (p *Processor) WithSink(sink OutcomeSink) {
	if p != nil {
		p.sink = sink
	}
}

// Options returns the processing options.
func (p *Processor) Options() Options {
	return p.opts
}

// ProcessAll processes every video in videoDir with src. The returned error is
// non-nil only for problems that stop the run before or between videos: an
// unusable video directory, an unprobeable audio track, or cancellation.
// Per-video failures are reported through Result.
func (p *Processor) ProcessAll(ctx context.Context, videoDir string, src source.AudioSource) (Result, error) {
	videos, err := Discover(videoDir)
	if err != nil {
		return Result{}, err
	}

	audioFile := ffprobe.NewMediaFile(src.Path)
	audioDuration, err := audioFile.Duration(ctx, p.prober)
	if err != nil {
		return Result{}, err
	}

	logging.WithContext(ctx, p.logger).Info("processing videos",
		logging.String(logging.FieldEventType, "batch_start"),
		logging.Int("videos", len(videos)),
		logging.String("audio", src.Path),
		logging.String("audio_origin", string(src.Origin)),
		logging.Float64("audio_duration", audioDuration),
	)

	result := Result{Outcomes: make([]Outcome, 0, len(videos))}
	for _, video := range videos {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Outcomes = append(result.Outcomes, p.ProcessVideo(ctx, video, audioFile))
	}
	return result, nil
}

// ProcessVideo processes one video against the audio in audioFile, whose
// duration is probed at most once across calls.
func (p *Processor) ProcessVideo(ctx context.Context, video string, audioFile *ffprobe.MediaFile) Outcome {
	start := time.Now()
	ctx = services.WithVideo(ctx, video)
	logger := logging.WithContext(ctx, p.logger)

	outcome := p.processVideo(ctx, logger, video, audioFile)
	outcome.Elapsed = time.Since(start)

	if outcome.Err != nil {
		logger.Error("video failed",
			logging.String(logging.FieldEventType, "video_failed"),
			logging.Error(outcome.Err),
		)
	} else {
		attrs := []logging.Attr{
			logging.String(logging.FieldEventType, "video_complete"),
			logging.String("output", outcome.Output),
			logging.Bool("dry_run", outcome.DryRun),
			logging.Duration("elapsed", outcome.Elapsed),
		}
		if info, err := os.Stat(outcome.Output); err == nil && !outcome.DryRun {
			attrs = append(attrs, logging.Int64("output_bytes", info.Size()))
		}
		logger.Info("video processed", logging.Args(attrs...)...)
	}
	if p.sink != nil {
		p.sink.RecordOutcome(ctx, outcome)
	}
	return outcome
}

func (p *Processor) processVideo(ctx context.Context, logger *slog.Logger, video string, audioFile *ffprobe.MediaFile) Outcome {
	outcome := Outcome{Video: video}

	audioDuration, err := audioFile.Duration(ctx, p.prober)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	videoDuration, err := p.prober.Duration(services.WithStage(ctx, "probe"), video)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	plan := BuildPlan(video, videoDuration, audioDuration, p.opts)
	outcome.Plan = plan
	outcome.Output = plan.Output
	if plan.InPlace {
		outcome.Output = video
	}

	exists, err := fileutil.Exists(plan.Output)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrOutputExists, "plan", "", plan.Output, err)
		return outcome
	}
	if exists && !plan.Overwrite {
		outcome.Err = services.Wrap(services.ErrOutputExists, "plan", "",
			fmt.Sprintf("output exists: %s (use --overwrite)", plan.Output), nil)
		return outcome
	}

	args := plan.Args(audioFile.Path)
	logger.Debug("planned remux",
		logging.String("output", plan.Output),
		logging.String("audio_codec", plan.AudioCodec),
		logging.Float64("video_duration", plan.VideoDuration),
		logging.Float64("audio_duration", plan.AudioDuration),
		logging.Bool("shortest", plan.Shortest),
		logging.String("args", strings.Join(args, " ")),
	)
	if p.opts.DryRun {
		outcome.DryRun = true
		return outcome
	}

	if _, err := p.runner.Run(services.WithStage(ctx, "transcode"), ffmpeg.Command{Binary: p.opts.FFmpegBinary, Args: args}); err != nil {
		// An output that predates this run is never removed.
		if exists {
			outcome.Err = services.Wrap(services.ErrExternalTool, "transcode", "ffmpeg", "", err)
			return outcome
		}
		if rmErr := fileutil.RemoveIfExists(plan.Output); rmErr != nil {
			logger.Warn("could not remove partial output",
				logging.String(logging.FieldEventType, "partial_output_cleanup_failed"),
				logging.String("output", plan.Output),
				logging.Error(rmErr),
			)
		}
		outcome.Err = services.Wrap(services.ErrExternalTool, "transcode", "ffmpeg", "", err)
		return outcome
	}

	if plan.InPlace {
		if err := p.replace(plan.Output, video); err != nil {
			_ = fileutil.RemoveIfExists(plan.Output)
			outcome.Err = services.Wrap(services.ErrReplace, "replace", "", video, err)
			return outcome
		}
	}
	return outcome
}

// IsCancellation reports whether err stems from context cancellation.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
