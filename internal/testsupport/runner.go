package testsupport

import (
	"context"
	"sync"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
)

// RecordingRunner is an ffmpeg.Runner that records every command and answers
// with Respond (or an empty success when Respond is nil).
type RecordingRunner struct {
	Respond func(ffmpeg.Command) (ffmpeg.Result, error)

	mu    sync.Mutex
	calls []ffmpeg.Command
}

func (r *RecordingRunner) Run(_ context.Context, cmd ffmpeg.Command) (ffmpeg.Result, error) {
	r.mu.Lock()
	r.calls = append(r.calls, ffmpeg.Command{Binary: cmd.Binary, Args: append([]string(nil), cmd.Args...)})
	respond := r.Respond
	r.mu.Unlock()
	if respond == nil {
		return ffmpeg.Result{}, nil
	}
	return respond(cmd)
}

// Commands returns a copy of the recorded commands.
func (r *RecordingRunner) Commands() []ffmpeg.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ffmpeg.Command(nil), r.calls...)
}
