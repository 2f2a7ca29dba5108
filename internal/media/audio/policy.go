package audio

import (
	"fmt"
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

// Policy decides which MP3 in the audio directory is used.
type Policy string

const (
	// PolicyLatest picks the most recently modified file.
	PolicyLatest Policy = "latest"
	// PolicyOldest picks the least recently modified file.
	PolicyOldest Policy = "oldest"
	// PolicyName picks the file matching a requested name.
	PolicyName Policy = "name"
)

// ParsePolicy converts user input into a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(value))); p {
	case PolicyLatest, PolicyOldest, PolicyName:
		return p, nil
	default:
		return "", services.Wrap(services.ErrConfiguration, "audio", "policy",
			fmt.Sprintf("unknown audio pick mode %q (want latest, oldest, or name)", value), nil)
	}
}
