package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".mkv":  {},
	".avi":  {},
	".m4v":  {},
	".webm": {},
}

// IsVideo reports whether name has one of the supported container extensions,
// ignoring case.
func IsVideo(name string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Discover returns the regular video files directly inside dir sorted by path.
// A missing directory or one without videos is a configuration error.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrConfiguration, "discover", "",
				fmt.Sprintf("video directory not found: %s", dir), nil)
		}
		return nil, services.Wrap(services.ErrConfiguration, "discover", "", "read video directory", err)
	}

	videos := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !IsVideo(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		videos = append(videos, path)
	}
	if len(videos) == 0 {
		return nil, services.Wrap(services.ErrConfiguration, "discover", "",
			fmt.Sprintf("no video files found in %s", dir), nil)
	}
	sort.Strings(videos)
	return videos, nil
}
