package main

import (
	"github.com/spf13/cobra"
)

// rootFlags holds every flag bound on the root command. Media flags are
// persistent so watch mode shares them.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
	dryRun     bool
	noHistory  bool
	timeout    int

	combine       bool
	audioFile     string
	audioDir      string
	audioPick     string
	audioName     string
	audioInputDir string
	videoDir      string
	audioCodec    string
	suffix        string
	inPlace       bool
	overwrite     bool
	listLengths   bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "audioswitch",
		Short: "Replace the audio track of a batch of videos with an MP3",
		Long: "audioswitch remuxes every video in a directory with a single MP3 track.\n" +
			"The track is given with --audio-file, picked from the audio directory,\n" +
			"or combined from the fragments in the audio input directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.listLengths {
				return runListAudioLengths(cmd, ctx)
			}
			return runBatch(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "console", "Log format (console, json)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Debug logging and live ffmpeg output")
	pf.IntVar(&flags.timeout, "timeout", 0, "Per-invocation ffmpeg/ffprobe timeout in seconds (0 disables)")
	pf.BoolVar(&flags.noHistory, "no-history", false, "Do not record this run in the history database")

	pf.StringVar(&flags.audioFile, "audio-file", "", "Use this MP3 instead of selecting one")
	pf.StringVar(&flags.audioDir, "audio-dir", "audio", "Directory holding candidate MP3 tracks")
	pf.StringVar(&flags.audioPick, "audio-pick", "latest", "How to pick from --audio-dir: latest, oldest, or name")
	pf.StringVar(&flags.audioName, "audio-name", "", "File name or stem used with --audio-pick name")
	pf.StringVar(&flags.audioInputDir, "audio-input-dir", "audio-input", "Directory of MP3 fragments to combine")
	pf.StringVar(&flags.videoDir, "video-dir", "video", "Directory of videos to process")
	pf.StringVar(&flags.audioCodec, "audio-codec", "", "Audio encoder for outputs (default depends on container)")
	pf.StringVar(&flags.suffix, "suffix", "_newaudio", "Suffix appended to output file names")
	pf.BoolVar(&flags.inPlace, "in-place", false, "Replace the original videos")
	pf.BoolVar(&flags.overwrite, "overwrite", false, "Overwrite existing output files")
	pf.BoolVar(&flags.combine, "combine", false, "Always combine --audio-input-dir into a new track")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Plan every video without running ffmpeg")

	rootCmd.Flags().BoolVar(&flags.listLengths, "list-audio-lengths", false, "Print the duration of every MP3 in --audio-dir and exit")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))

	return rootCmd
}
