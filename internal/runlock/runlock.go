package runlock

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

// Lock is a held advisory lock on one video directory.
type Lock struct {
	path string
	dir  string
	lock *flock.Flock
}

// PathFor returns the lock file guarding videoDir.
func PathFor(lockDir, videoDir string) (string, error) {
	abs, err := filepath.Abs(videoDir)
	if err != nil {
		return "", fmt.Errorf("resolve video directory: %w", err)
	}
	sum := sha1.Sum([]byte(filepath.Clean(abs)))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:])+".lock"), nil
}

// Acquire takes a non-blocking lock on videoDir. A directory already locked
// by another process is reported as a configuration error.
func Acquire(lockDir, videoDir string) (*Lock, error) {
	path, err := PathFor(lockDir, videoDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "lock", "",
			fmt.Sprintf("another audioswitch run is already processing %s", videoDir), nil)
	}
	return &Lock{path: path, dir: videoDir, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the directory. The lock file is left in place.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
