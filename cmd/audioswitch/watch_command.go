package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/batch"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffprobe"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process new videos as they appear in the video directory",
		Long: "watch resolves the audio track once, then replaces the audio of every\n" +
			"video that is created in or moved into the video directory until interrupted.\n" +
			"Videos already present when the watch starts are left alone.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, ctx)
		},
	}
}

func runWatch(cmd *cobra.Command, cc *commandContext) error {
	runCtx := cmd.Context()
	s, err := openSession(runCtx, cmd, cc)
	if err != nil {
		return err
	}
	defer s.close()

	audioFile := ffprobe.NewMediaFile(s.source.Path)
	prober := ffprobe.NewProber(s.cfg.Tools.FFprobe, s.runner)
	if _, err := audioFile.Duration(runCtx, prober); err != nil {
		s.finish(err, 0)
		return err
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	var failed atomic.Int64
	opts := s.processor.Options()
	handler := func(ctx context.Context, path string) ([]string, error) {
		outcome := s.processor.ProcessVideo(ctx, path, audioFile)
		fmt.Fprintln(out, outcomeLine(outcome, colorize))
		produced := []string{outcome.Plan.Output}
		if opts.InPlace {
			produced = append(produced, path)
		}
		if outcome.Err != nil {
			failed.Add(1)
		}
		return produced, outcome.Err
	}

	suffix := opts.Suffix
	if opts.InPlace {
		suffix = ""
	}
	w, err := watch.New(watch.Options{
		Dir:    s.cfg.Paths.VideoDir,
		Settle: s.cfg.SettleDelay(),
		Match:  batch.IsVideo,
		Ignore: func(path string) bool { return batch.IsOutputName(path, suffix) },
	}, handler, s.logger)
	if err != nil {
		s.finish(err, 0)
		return err
	}
	defer w.Close()

	fmt.Fprintf(out, "Watching %s with %s (%s); press Ctrl+C to stop\n", s.cfg.Paths.VideoDir, s.source.Path, s.source.Origin)
	err = w.Run(s.withRun(runCtx))
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	s.finish(err, int(failed.Load()))
	s.logger.Info("watch stopped",
		logging.String(logging.FieldEventType, "watch_stop"),
		logging.Int64("failed", failed.Load()),
	)
	return err
}
