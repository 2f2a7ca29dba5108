package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that ffmpeg and ffprobe are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig(ctx, cmd)
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.MediaRequirements(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{
				{Header: "Tool"},
				{Header: "Command"},
				{Header: "Status"},
				{Header: "Detail", MaxWidth: 60},
			}, dependencyRows(statuses)))
			return deps.Require(statuses)
		},
	}
}

func dependencyRows(statuses []deps.Status) [][]string {
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		state := "missing"
		detail := status.Detail
		switch {
		case status.Available:
			state = "ok"
			detail = status.Resolved
		case status.Optional:
			state = "optional"
		}
		rows = append(rows, []string{status.Name, status.Command, state, detail})
	}
	return rows
}
