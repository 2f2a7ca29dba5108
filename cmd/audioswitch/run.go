package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/batch"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/source"
)

func runBatch(cmd *cobra.Command, cc *commandContext) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd, cc)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.processor.ProcessAll(s.withRun(ctx), s.cfg.Paths.VideoDir, s.source)
	s.finish(err, len(result.Failures()))

	out := cmd.OutOrStdout()
	printBatchSummary(out, s.source, result, cc.flags.dryRun, shouldColorize(out))
	if err != nil {
		return err
	}
	return result.Err()
}

func printBatchSummary(out io.Writer, src source.AudioSource, result batch.Result, dryRun bool, colorize bool) {
	if len(result.Outcomes) == 0 {
		return
	}
	fmt.Fprintf(out, "Audio: %s (%s)\n", src.Path, src.Origin)
	for _, outcome := range result.Outcomes {
		fmt.Fprintln(out, outcomeLine(outcome, colorize))
	}
	failed := len(result.Failures())
	verb := "Processed"
	if dryRun {
		verb = "Planned"
	}
	fmt.Fprintf(out, "%s %d video(s): %d succeeded, %d failed\n", verb, len(result.Outcomes), result.Succeeded(), failed)
}

func outcomeLine(outcome batch.Outcome, colorize bool) string {
	kind := outcomeStatusKind(outcome)
	msg := outcome.Output
	switch kind {
	case statusError:
		msg = outcome.Err.Error()
	case statusInfo:
		msg = "would write " + outcome.Plan.Output
		if outcome.Plan.Shortest {
			msg += " (trimmed to video length)"
		}
	}
	return renderStatusLine(filepath.Base(outcome.Video), kind, msg, colorize)
}
