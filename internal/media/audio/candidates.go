package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Extension is the only audio container the tool selects or combines.
const Extension = ".mp3"

// Candidate is one MP3 file found in a directory.
type Candidate struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// IsMP3 reports whether name carries the .mp3 extension, ignoring case.
func IsMP3(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}

// ListMP3 returns the regular .mp3 files directly inside dir sorted by file
// name. A missing directory yields no candidates and no error.
func ListMP3(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read audio directory %s: %w", dir, err)
	}
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if !IsMP3(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:    path,
			Name:    entry.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})
	return candidates, nil
}
