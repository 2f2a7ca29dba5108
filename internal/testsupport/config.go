package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose media and state directories live in a
// unique temp directory. The media directories are created empty.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.AudioDir = filepath.Join(base, "audio")
	cfgVal.Paths.AudioInputDir = filepath.Join(base, "audio-input")
	cfgVal.Paths.VideoDir = filepath.Join(base, "video")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Watch.SettleMillis = 50

	for _, dir := range []string{cfgVal.Paths.AudioDir, cfgVal.Paths.AudioInputDir, cfgVal.Paths.VideoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStubbedBinaries installs the ffmpeg and ffprobe stubs and points the
// config at them.
func WithStubbedBinaries() ConfigOption {
	return func(b *configBuilder) {
		stubs := InstallMediaStubs(b.t)
		b.cfg.Tools.FFmpeg = stubs.FFmpeg
		b.cfg.Tools.FFprobe = stubs.FFprobe
	}
}

// WithHistoryDisabled turns the run ledger off.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
