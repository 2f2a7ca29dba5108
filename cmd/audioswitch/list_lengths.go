package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/deps"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/audio"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffprobe"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/textutil"
)

// runListAudioLengths prints the duration of each MP3 in the audio directory
// and a total. Videos are never touched.
func runListAudioLengths(cmd *cobra.Command, cc *commandContext) error {
	cfg, err := requireConfig(cc, cmd)
	if err != nil {
		return err
	}
	if err := deps.CheckMedia(cfg); err != nil {
		return err
	}
	candidates, err := audio.ListMP3(cfg.Paths.AudioDir)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "list", "", "read audio directory", err)
	}
	out := cmd.OutOrStdout()
	if len(candidates) == 0 {
		fmt.Fprintf(out, "No MP3 files found in %s\n", cfg.Paths.AudioDir)
		return nil
	}

	prober := ffprobe.NewProber(cfg.Tools.FFprobe, cc.runner(cmd, cfg))
	var total float64
	for _, candidate := range candidates {
		seconds, err := prober.Duration(cmd.Context(), candidate.Path)
		if err != nil {
			return err
		}
		total += seconds
		fmt.Fprintf(out, "%s: %s\n", candidate.Name, textutil.FormatDuration(seconds))
	}
	fmt.Fprintf(out, "Total: %s\n", textutil.FormatDuration(total))
	return nil
}
