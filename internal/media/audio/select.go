package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/textutil"
)

// Select picks one MP3 from dir according to policy. found is false with a
// nil error when dir holds no MP3 files, so callers can fall back to
// combining fragments. Ties on modification time go to the file that sorts
// first by name.
func Select(dir string, policy Policy, name string) (string, bool, error) {
	candidates, err := ListMP3(dir)
	if err != nil {
		return "", false, services.Wrap(services.ErrSelection, "audio", "list", "", err)
	}
	if len(candidates) == 0 {
		return "", false, nil
	}

	switch policy {
	case PolicyLatest:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.ModTime.After(best.ModTime) {
				best = c
			}
		}
		return best.Path, true, nil
	case PolicyOldest:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.ModTime.Before(best.ModTime) {
				best = c
			}
		}
		return best.Path, true, nil
	case PolicyName:
		path, err := selectByName(dir, name, candidates)
		if err != nil {
			return "", false, err
		}
		return path, true, nil
	default:
		return "", false, services.Wrap(services.ErrConfiguration, "audio", "select",
			fmt.Sprintf("unknown audio pick mode %q", policy), nil)
	}
}

func selectByName(dir, name string, candidates []Candidate) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", services.Wrap(services.ErrSelection, "audio", "select",
			"--audio-name is required when using --audio-pick name", nil)
	}

	// An explicit name without the .mp3 extension prefers the .mp3 sibling.
	direct := filepath.Join(dir, name)
	if !IsMP3(name) {
		sibling := strings.TrimSuffix(direct, filepath.Ext(direct)) + Extension
		if isRegularFile(sibling) {
			return sibling, nil
		}
	}
	if isRegularFile(direct) {
		return direct, nil
	}

	var matches []Candidate
	for _, c := range candidates {
		stem := strings.TrimSuffix(c.Name, filepath.Ext(c.Name))
		if textutil.SameName(c.Name, name) || textutil.SameName(stem, name) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].Path, nil
	case 0:
		return "", services.Wrap(services.ErrSelection, "audio", "select",
			fmt.Sprintf("no MP3 found in %s named %s", dir, name), nil)
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return "", services.Wrap(services.ErrSelection, "audio", "select",
			fmt.Sprintf("multiple matches for --audio-name %s: %s", name, strings.Join(names, ", ")), nil)
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
