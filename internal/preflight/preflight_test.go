package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, ReadWrite)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "read/write ok") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), Read)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, Read)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if !CheckDirectoryAccess("test", dir, Read).Passed {
		t.Fatal("read access should pass")
	}
	if CheckDirectoryAccess("test", dir, ReadWrite).Passed {
		t.Fatal("write access should fail on a read-only dir")
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.VideoDir = filepath.Join(base, "video")
	cfg.Paths.AudioDir = filepath.Join(base, "audio")
	cfg.Paths.AudioInputDir = filepath.Join(base, "input")

	results := RunAll(&cfg)
	err := Err(results)
	if !errors.Is(err, services.ErrConfiguration) || !strings.Contains(err.Error(), "Video directory") {
		t.Fatalf("expected video directory failure, got %v", err)
	}
	if strings.Contains(err.Error(), "Audio directory") {
		t.Fatalf("absent audio directory must not fail: %v", err)
	}

	if err := os.Mkdir(cfg.Paths.VideoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Err(RunAll(&cfg)); err != nil {
		t.Fatalf("expected all checks to pass, got %v", err)
	}
}
