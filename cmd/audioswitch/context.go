package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

type commandContext struct {
	flags *rootFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and layers explicitly set flags
// over it.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if err := cfg.Apply(c.flags.overrides(cmd)); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "flags", "", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (f *rootFlags) overrides(cmd *cobra.Command) config.Overrides {
	changed := func(name string) bool {
		flag := cmd.Flags().Lookup(name)
		return flag != nil && flag.Changed
	}
	var o config.Overrides
	stringFlag := func(name string, value *string) *string {
		if changed(name) {
			return value
		}
		return nil
	}
	o.AudioDir = stringFlag("audio-dir", &f.audioDir)
	o.AudioInputDir = stringFlag("audio-input-dir", &f.audioInputDir)
	o.VideoDir = stringFlag("video-dir", &f.videoDir)
	o.Pick = stringFlag("audio-pick", &f.audioPick)
	o.Name = stringFlag("audio-name", &f.audioName)
	o.Suffix = stringFlag("suffix", &f.suffix)
	o.AudioCodec = stringFlag("audio-codec", &f.audioCodec)
	o.LogLevel = stringFlag("log-level", &f.logLevel)
	o.LogFormat = stringFlag("log-format", &f.logFormat)
	if changed("in-place") {
		o.InPlace = &f.inPlace
	}
	if changed("overwrite") {
		o.Overwrite = &f.overwrite
	}
	if changed("timeout") {
		o.Timeout = &f.timeout
	}
	if f.verbose {
		debug := "debug"
		o.LogLevel = &debug
	}
	o.NoHistory = f.noHistory
	return o
}

// logger builds the run logger on the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, func() error, error) {
	logger, closer, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		Writer:   cmd.ErrOrStderr(),
		FilePath: cfg.Logging.File,
	})
	if err != nil {
		return nil, closer, services.Wrap(services.ErrConfiguration, "logging", "", "", err)
	}
	return logger, closer, nil
}

// runner executes ffmpeg and ffprobe; verbose runs stream their stderr.
func (c *commandContext) runner(cmd *cobra.Command, cfg *config.Config) ffmpeg.Runner {
	r := ffmpeg.ExecRunner{Timeout: cfg.Timeout()}
	if c.flags.verbose {
		r.Tee = cmd.ErrOrStderr()
	}
	return r
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func requireConfig(ctx *commandContext, cmd *cobra.Command) (*config.Config, error) {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration unavailable")
	}
	return cfg, nil
}
