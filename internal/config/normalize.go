package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSelection()
	c.normalizeOutput()
	c.normalizeTools()
	c.normalizeLogging()
	return c.normalizeLogFile()
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.AudioDir, err = expandHome(c.Paths.AudioDir); err != nil {
		return fmt.Errorf("paths.audio_dir: %w", err)
	}
	if c.Paths.AudioInputDir, err = expandHome(c.Paths.AudioInputDir); err != nil {
		return fmt.Errorf("paths.audio_input_dir: %w", err)
	}
	if c.Paths.VideoDir, err = expandHome(c.Paths.VideoDir); err != nil {
		return fmt.Errorf("paths.video_dir: %w", err)
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSelection() {
	c.Selection.Pick = strings.ToLower(strings.TrimSpace(c.Selection.Pick))
	if c.Selection.Pick == "" {
		c.Selection.Pick = defaultPick
	}
	c.Selection.Name = strings.TrimSpace(c.Selection.Name)
}

func (c *Config) normalizeOutput() {
	c.Output.AudioCodec = strings.TrimSpace(c.Output.AudioCodec)
}

func (c *Config) normalizeTools() {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpeg
	}
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = defaultFFprobe
	}
	c.Combine.Codec = strings.TrimSpace(c.Combine.Codec)
	if c.Combine.Codec == "" {
		c.Combine.Codec = defaultCombineCodec
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLogFile() error {
	var err error
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
