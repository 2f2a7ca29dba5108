package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/combine"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/audio"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

// Origin records how the run's audio track was obtained.
type Origin string

const (
	OriginExplicit Origin = "explicit"
	OriginSelected Origin = "selected"
	OriginCombined Origin = "combined"
)

// AudioSource is the single audio file every video in a run receives.
type AudioSource struct {
	Path   string
	Origin Origin
}

// Combiner produces a combined track from a fragment directory.
type Combiner interface {
	Combine(ctx context.Context, inputDir, output string) error
}

// Request carries the inputs to Resolve.
type Request struct {
	// ExplicitFile, when set, is used as-is and nothing else is consulted.
	ExplicitFile string
	AudioDir     string
	Policy       audio.Policy
	Name         string
	InputDir     string
	// Combine forces a fresh combined track even when a file could be selected.
	Combine bool
	// Now stamps the combined file name. Defaults to time.Now.
	Now func() time.Time
}

// Resolve determines the run's audio source. An explicit file wins; otherwise
// a file is selected from AudioDir, and fragments in InputDir are combined
// into AudioDir when Combine is set or nothing could be selected. The
// resolved path must exist.
func Resolve(ctx context.Context, req Request, combiner Combiner) (AudioSource, error) {
	if req.ExplicitFile != "" {
		return verify(AudioSource{Path: req.ExplicitFile, Origin: OriginExplicit})
	}

	path, found, err := audio.Select(req.AudioDir, req.Policy, req.Name)
	if err != nil {
		return AudioSource{}, err
	}
	if found && !req.Combine {
		return verify(AudioSource{Path: path, Origin: OriginSelected})
	}

	if combiner == nil {
		return AudioSource{}, services.Wrap(services.ErrConfiguration, "source", "combine", "no combiner configured", nil)
	}
	now := time.Now
	if req.Now != nil {
		now = req.Now
	}
	output := filepath.Join(req.AudioDir, combine.TimestampName(now()))
	if err := combiner.Combine(ctx, req.InputDir, output); err != nil {
		return AudioSource{}, err
	}
	return verify(AudioSource{Path: output, Origin: OriginCombined})
}

func verify(src AudioSource) (AudioSource, error) {
	info, err := os.Stat(src.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AudioSource{}, services.Wrap(services.ErrConfiguration, "source", "verify",
				fmt.Sprintf("audio file not found: %s", src.Path), nil)
		}
		return AudioSource{}, services.Wrap(services.ErrConfiguration, "source", "verify", src.Path, err)
	}
	if info.IsDir() {
		return AudioSource{}, services.Wrap(services.ErrConfiguration, "source", "verify",
			fmt.Sprintf("audio path is a directory: %s", src.Path), nil)
	}
	return src, nil
}
