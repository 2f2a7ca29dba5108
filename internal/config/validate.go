package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSelection(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateCombine(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Watch.SettleMillis < 0 {
		return errors.New("watch.settle_millis must be >= 0")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.AudioDir == "" {
		return errors.New("paths.audio_dir must be set")
	}
	if c.Paths.AudioInputDir == "" {
		return errors.New("paths.audio_input_dir must be set")
	}
	if c.Paths.VideoDir == "" {
		return errors.New("paths.video_dir must be set")
	}
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateSelection() error {
	switch c.Selection.Pick {
	case PickLatest, PickOldest, PickName:
		return nil
	default:
		return fmt.Errorf("selection.pick must be one of latest, oldest, name (got %q)", c.Selection.Pick)
	}
}

func (c *Config) validateOutput() error {
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output.suffix must not contain path separators (got %q)", c.Output.Suffix)
	}
	if !c.Output.InPlace && c.Output.Suffix == "" {
		return errors.New("output.suffix must be set unless output.in_place is true")
	}
	return nil
}

func (c *Config) validateCombine() error {
	if c.Combine.Quality < 0 || c.Combine.Quality > 9 {
		return fmt.Errorf("combine.quality must be between 0 and 9 (got %d)", c.Combine.Quality)
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.TimeoutSeconds < 0 {
		return errors.New("tools.timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
