package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestReplaceMovesFileAndKeepsMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip_tmp.mp4")
	dst := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(src, []byte("new"), 0o600); err != nil {
		t.Fatalf("write src: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o640); err != nil {
		t.Fatalf("write dst: %v", err)
	}

	if err := Replace(src, dst); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected replaced content, got %q", data)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat dst: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("expected original mode 0640, got %v", info.Mode().Perm())
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected src to be gone, got %v", err)
	}
}

func TestReplaceReportsCrossDevice(t *testing.T) {
	orig := renameFunc
	t.Cleanup(func() { renameFunc = orig })
	renameFunc = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}
	err := Replace(src, filepath.Join(dir, "b"))
	var crossErr *CrossDeviceError
	if !errors.As(err, &crossErr) {
		t.Fatalf("expected CrossDeviceError, got %v", err)
	}
	if !errors.Is(err, syscall.EXDEV) {
		t.Fatalf("expected EXDEV in chain, got %v", err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Fatalf("src should remain after failed rename: %v", statErr)
	}
}

func TestRemoveIfExistsAndExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists on missing file: %v", err)
	}
	if ok, err := Exists(path); err != nil || ok {
		t.Fatalf("Exists() = %v, %v", ok, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if ok, err := Exists(path); err != nil || !ok {
		t.Fatalf("Exists() = %v, %v", ok, err)
	}
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists: %v", err)
	}
}
