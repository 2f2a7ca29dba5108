package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/batch"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/combine"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/deps"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/history"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/audio"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffprobe"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/preflight"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/runlock"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/source"
)

// session is the wiring shared by the batch and watch commands: checked
// tools, a locked video directory, a resolved audio track, and an optional
// history run.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	runner    ffmpeg.Runner
	processor *batch.Processor
	source    source.AudioSource
	lock      *runlock.Lock
	store     *history.Store
	run       history.Run
	closeLog  func() error
}

func openSession(ctx context.Context, cmd *cobra.Command, cc *commandContext) (*session, error) {
	cfg, err := requireConfig(cc, cmd)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := cc.logger(cmd, cfg)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger, closeLog: closeLog, runner: cc.runner(cmd, cfg)}
	if err := s.open(ctx, cc); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *session) open(ctx context.Context, cc *commandContext) error {
	cfg := s.cfg
	if err := deps.CheckMedia(cfg); err != nil {
		return err
	}
	if err := preflight.Err(preflight.RunAll(cfg)); err != nil {
		return err
	}
	if err := cfg.EnsureStateDir(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "state", "", err)
	}
	lock, err := runlock.Acquire(cfg.LockDir(), cfg.Paths.VideoDir)
	if err != nil {
		return err
	}
	s.lock = lock

	policy, err := audio.ParsePolicy(cfg.Selection.Pick)
	if err != nil {
		return err
	}
	explicit := strings.TrimSpace(cc.flags.audioFile)
	if explicit != "" {
		if explicit, err = config.ExpandPath(explicit); err != nil {
			return services.Wrap(services.ErrConfiguration, "source", "", "resolve --audio-file", err)
		}
	}
	combiner := combine.New(combine.Options{
		Binary:  cfg.Tools.FFmpeg,
		Codec:   cfg.Combine.Codec,
		Quality: cfg.Combine.Quality,
	}, s.runner, s.logger)
	src, err := source.Resolve(ctx, source.Request{
		ExplicitFile: explicit,
		AudioDir:     cfg.Paths.AudioDir,
		Policy:       policy,
		Name:         cfg.Selection.Name,
		InputDir:     cfg.Paths.AudioInputDir,
		Combine:      cc.flags.combine,
	}, combiner)
	if err != nil {
		return err
	}
	s.source = src
	s.logger.Info("audio source resolved",
		logging.String(logging.FieldEventType, "audio_resolved"),
		logging.String("audio", src.Path),
		logging.String("audio_origin", string(src.Origin)),
	)

	prober := ffprobe.NewProber(cfg.Tools.FFprobe, s.runner)
	s.processor = batch.NewProcessor(batch.Options{
		FFmpegBinary: cfg.Tools.FFmpeg,
		Suffix:       cfg.Output.Suffix,
		AudioCodec:   cfg.Output.AudioCodec,
		InPlace:      cfg.Output.InPlace,
		Overwrite:    cfg.Output.Overwrite,
		DryRun:       cc.flags.dryRun,
	}, prober, s.runner, s.logger)

	if cfg.History.Enabled {
		s.beginHistory(ctx, cc.flags.dryRun)
	}
	return nil
}

// beginHistory opens the ledger and starts a run. Ledger problems are logged
// and never fail the batch.
func (s *session) beginHistory(ctx context.Context, dryRun bool) {
	store, err := history.Open(s.cfg.HistoryPath())
	if err != nil {
		s.logger.Warn("history unavailable",
			logging.String(logging.FieldEventType, "history_open_failed"),
			logging.Error(err),
		)
		return
	}
	run, err := store.BeginRun(ctx, history.RunInfo{
		VideoDir:    s.cfg.Paths.VideoDir,
		AudioPath:   s.source.Path,
		AudioOrigin: string(s.source.Origin),
		DryRun:      dryRun,
	})
	if err != nil {
		_ = store.Close()
		s.logger.Warn("history run not recorded",
			logging.String(logging.FieldEventType, "history_begin_failed"),
			logging.Error(err),
		)
		return
	}
	s.store = store
	s.run = run
	s.processor.WithSink(&historyRecorder{store: store, runID: run.ID, logger: s.logger})
}

// withRun stamps ctx with the history run ID so log records carry it.
func (s *session) withRun(ctx context.Context) context.Context {
	if s.run.ID == "" {
		return ctx
	}
	return services.WithRunID(ctx, s.run.ID)
}

// finish closes the history run with a status derived from err and failed.
func (s *session) finish(err error, failed int) {
	if s.store == nil {
		return
	}
	status := history.RunSucceeded
	message := ""
	switch {
	case batch.IsCancellation(err):
		status = history.RunCancelled
		message = err.Error()
	case err != nil:
		status = history.RunAborted
		message = err.Error()
	case failed > 0:
		status = history.RunFailed
		message = (&batch.FailureError{Count: failed}).Error()
	}
	// The run context may already be cancelled; the final write must still land.
	if ferr := s.store.FinishRun(context.Background(), s.run.ID, status, message); ferr != nil {
		s.logger.Warn("history run not finalized",
			logging.String(logging.FieldEventType, "history_finish_failed"),
			logging.Error(ferr),
		)
	}
}

func (s *session) close() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.lock != nil {
		if err := s.lock.Release(); err != nil {
			s.logger.Warn("failed to release directory lock", logging.Error(err))
		}
	}
	if s.closeLog != nil {
		_ = s.closeLog()
	}
}

// historyRecorder mirrors batch outcomes into the ledger.
type historyRecorder struct {
	store  *history.Store
	runID  string
	logger *slog.Logger
}

func (r *historyRecorder) RecordOutcome(ctx context.Context, outcome batch.Outcome) {
	record := history.Outcome{
		Video:      outcome.Video,
		Output:     outcome.Output,
		Status:     history.OutcomeOK,
		Elapsed:    outcome.Elapsed,
		Shortest:   outcome.Plan.Shortest,
		AudioCodec: outcome.Plan.AudioCodec,
	}
	switch {
	case outcome.Err != nil:
		record.Status = history.OutcomeFailed
		record.Error = outcome.Err.Error()
	case outcome.DryRun:
		record.Status = history.OutcomePlanned
	}
	if err := r.store.RecordOutcome(context.WithoutCancel(ctx), r.runID, record); err != nil {
		r.logger.Warn("history outcome not recorded",
			logging.String(logging.FieldEventType, "history_record_failed"),
			logging.String(logging.FieldVideo, outcome.Video),
			logging.Error(err),
		)
	}
}
