package deps

import (
	"fmt"
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

// MediaRequirements lists the binaries a batch run needs.
func MediaRequirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.Tools.FFmpeg,
			Description: "Replaces audio tracks and concatenates fragments",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.Tools.FFprobe,
			Description: "Reads media durations",
		},
	}
}

// Require returns a configuration error naming every required binary that is
// unavailable. Optional requirements never fail the check.
func Require(statuses []Status) error {
	var missing []string
	for _, status := range statuses {
		if status.Available || status.Optional {
			continue
		}
		missing = append(missing, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
	}
	if len(missing) == 0 {
		return nil
	}
	return services.Wrap(services.ErrConfiguration, "deps", "",
		"missing required tools: "+strings.Join(missing, ", "), nil)
}

// CheckMedia checks the configured ffmpeg and ffprobe binaries.
func CheckMedia(cfg *config.Config) error {
	return Require(CheckBinaries(MediaRequirements(cfg)))
}
