package preflight

import (
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/config"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the directories a batch touches. The video directory must be
// writable because outputs are written next to the inputs. The audio
// directories may be absent, since an empty source falls through to
// combining or a selection error with a clearer message.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Video directory", cfg.Paths.VideoDir, ReadWrite),
		CheckOptionalDirectory("Audio directory", cfg.Paths.AudioDir, Read),
		CheckOptionalDirectory("Audio input directory", cfg.Paths.AudioInputDir, Read),
	}
}

// Err folds failed results into one configuration error.
func Err(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r.Name+": "+r.Detail)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return services.Wrap(services.ErrConfiguration, "preflight", "", strings.Join(failed, "; "), nil)
}
