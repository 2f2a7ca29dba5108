package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mode selects the permissions CheckDirectoryAccess demands.
type Mode uint32

const (
	Read      Mode = unix.R_OK | unix.X_OK
	ReadWrite Mode = unix.R_OK | unix.W_OK | unix.X_OK
)

func (m Mode) String() string {
	if m&unix.W_OK != 0 {
		return "read/write"
	}
	return "read"
}

// CheckDirectoryAccess verifies that the directory exists and grants mode.
func CheckDirectoryAccess(name, path string, mode Mode) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, uint32(mode)); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, mode)}
}

// CheckOptionalDirectory passes for a missing directory and otherwise behaves
// like CheckDirectoryAccess.
func CheckOptionalDirectory(name, path string, mode Mode) Result {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (absent)", path)}
	}
	return CheckDirectoryAccess(name, path, mode)
}
