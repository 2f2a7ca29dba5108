package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// renameFunc is swapped in tests to simulate rename failures.
var renameFunc = os.Rename

// CrossDeviceError reports a rename that failed because source and target sit
// on different filesystems. Replace never falls back to copy and delete.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cannot move %q to %q across filesystems: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// Replace atomically moves src over dst. When dst exists its permission bits
// are applied to src first so the replacement keeps the original mode. src
// is left in place if the rename fails.
func Replace(src, dst string) error {
	if info, err := os.Stat(dst); err == nil {
		if err := os.Chmod(src, info.Mode().Perm()); err != nil {
			return fmt.Errorf("preserve mode of %s: %w", dst, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dst, err)
	}

	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return fmt.Errorf("replace %s: %w", dst, err)
	}
	return nil
}

// RemoveIfExists deletes path, treating a missing file as success.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether anything is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func isEXDEV(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
