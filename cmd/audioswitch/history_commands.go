package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/history"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/textutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect previous runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func openHistory(ctx *commandContext, cmd *cobra.Command) (*history.Store, error) {
	cfg, err := requireConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, services.Wrap(services.ErrConfiguration, "history", "",
			"run history is disabled (history.enabled = false or --no-history)", nil)
	}
	return history.Open(cfg.HistoryPath())
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				if runs == nil {
					runs = []history.Run{}
				}
				return writeJSON(cmd, runs)
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable([]column{
				{Header: "Run"},
				{Header: "Started"},
				{Header: "Status"},
				{Header: "Videos", Align: alignRight},
				{Header: "Failed", Align: alignRight},
				{Header: "Audio", MaxWidth: 40},
			}, runRows(runs, time.Now())))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func runRows(runs []history.Run, now time.Time) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		status := string(run.Status)
		if run.DryRun {
			status += " (dry run)"
		}
		rows = append(rows, []string{
			run.ID,
			humanize.RelTime(run.StartedAt, now, "ago", "from now"),
			status,
			strconv.Itoa(run.Total),
			strconv.Itoa(run.Failed),
			filepath.Base(run.AudioPath),
		})
	}
	return rows
}

type runDetail struct {
	Run      history.Run       `json:"run"`
	Outcomes []history.Outcome `json:"outcomes"`
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the per-video outcomes of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			id := strings.TrimSpace(args[0])
			run, err := store.GetRun(cmd.Context(), id)
			if errors.Is(err, history.ErrRunNotFound) {
				return fmt.Errorf("no run with id %s", id)
			}
			if err != nil {
				return err
			}
			outcomes, err := store.Outcomes(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				if outcomes == nil {
					outcomes = []history.Outcome{}
				}
				return writeJSON(cmd, runDetail{Run: run, Outcomes: outcomes})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderRunHeader(run.ID, colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Status", runStatusKind(run.Status), string(run.Status), colorize))
			fmt.Fprintln(out, renderStatusLine("Started", statusInfo, run.StartedAt.Local().Format("2006-01-02 15:04:05"), colorize))
			fmt.Fprintln(out, renderStatusLine("Audio", statusInfo, fmt.Sprintf("%s (%s)", run.AudioPath, run.AudioOrigin), colorize))
			fmt.Fprintln(out, renderStatusLine("Video directory", statusInfo, run.VideoDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Dry run", statusInfo, yesNo(run.DryRun), colorize))
			if run.Error != "" {
				fmt.Fprintln(out, renderStatusLine("Error", statusError, run.Error, colorize))
			}
			if len(outcomes) == 0 {
				fmt.Fprintln(out, "No videos recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable([]column{
				{Header: "Video", MaxWidth: 40},
				{Header: "Status"},
				{Header: "Output", MaxWidth: 40},
				{Header: "Elapsed", Align: alignRight},
				{Header: "Error", MaxWidth: 60},
			}, outcomeRows(outcomes)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func outcomeRows(outcomes []history.Outcome) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		output := ""
		if o.Output != "" {
			output = filepath.Base(o.Output)
		}
		rows = append(rows, []string{
			filepath.Base(o.Video),
			string(o.Status),
			output,
			textutil.FormatSeconds(o.Elapsed.Seconds()),
			o.Error,
		})
	}
	return rows
}
