package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the media directories and the state directory.
type Paths struct {
	AudioDir      string `toml:"audio_dir"`
	AudioInputDir string `toml:"audio_input_dir"`
	VideoDir      string `toml:"video_dir"`
	StateDir      string `toml:"state_dir"`
}

// Selection controls how a single MP3 is picked from the audio directory.
type Selection struct {
	Pick string `toml:"pick"`
	Name string `toml:"name"`
}

// Output controls where and how processed videos are written.
type Output struct {
	Suffix     string `toml:"suffix"`
	AudioCodec string `toml:"audio_codec"`
	InPlace    bool   `toml:"in_place"`
	Overwrite  bool   `toml:"overwrite"`
}

// Combine controls the encoder used when concatenating fragments.
type Combine struct {
	Codec   string `toml:"codec"`
	Quality int    `toml:"quality"`
}

// Tools names the external binaries and an optional per-invocation timeout.
type Tools struct {
	FFmpeg         string `toml:"ffmpeg"`
	FFprobe        string `toml:"ffprobe"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// History toggles the local run ledger.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Watch configures the directory watcher.
type Watch struct {
	SettleMillis int `toml:"settle_millis"`
}

// Config encapsulates all configuration values for audioswitch.
//
// Configuration sections by subsystem:
//   - Paths: audio, fragment, video, and state directories
//   - Selection: audio pick policy and name
//   - Output: suffix, codec override, in-place and overwrite modes
//   - Combine: fragment concatenation encoder settings
//   - Tools: ffmpeg/ffprobe binaries and timeout
//   - Logging: log format, level, and optional file
//   - History: run ledger toggle
//   - Watch: settle delay for new files
type Config struct {
	Paths     Paths     `toml:"paths"`
	Selection Selection `toml:"selection"`
	Output    Output    `toml:"output"`
	Combine   Combine   `toml:"combine"`
	Tools     Tools     `toml:"tools"`
	Logging   Logging   `toml:"logging"`
	History   History   `toml:"history"`
	Watch     Watch     `toml:"watch"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults apply. The returned config has home-relative paths
// expanded and values normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Timeout returns the per-invocation tool timeout, or zero for none.
func (c *Config) Timeout() time.Duration {
	if c.Tools.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Tools.TimeoutSeconds) * time.Second
}

// SettleDelay returns how long the watcher waits before handing a new file over.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Watch.SettleMillis) * time.Millisecond
}

// HistoryPath returns the location of the run ledger database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LockDir returns the directory holding per-video-directory lock files.
func (c *Config) LockDir() string {
	return filepath.Join(c.Paths.StateDir, "locks")
}

// EnsureStateDir creates the state directory.
func (c *Config) EnsureStateDir() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create state directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// expandPath expands a leading tilde and returns an absolute, cleaned path.
func expandPath(pathValue string) (string, error) {
	expanded, err := expandHome(pathValue)
	if err != nil || expanded == "" {
		return expanded, err
	}
	absolute, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", expanded, err)
	}
	return absolute, nil
}

// expandHome expands a leading tilde and cleans the path but keeps relative
// paths relative to the working directory.
func expandHome(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "audioswitch")
	}
	return "~/.local/state/audioswitch"
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
