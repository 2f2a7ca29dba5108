package history

import "time"

// RunStatus is the lifecycle state of a recorded run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
	RunCancelled RunStatus = "cancelled"
	RunAborted   RunStatus = "aborted"
)

// OutcomeStatus is the result of one video within a run.
type OutcomeStatus string

const (
	OutcomeOK      OutcomeStatus = "ok"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomePlanned OutcomeStatus = "planned"
)

// RunInfo describes a run at the moment it starts.
type RunInfo struct {
	VideoDir    string
	AudioPath   string
	AudioOrigin string
	DryRun      bool
}

// Run is one recorded invocation.
type Run struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at,omitzero"`
	VideoDir    string    `json:"video_dir"`
	AudioPath   string    `json:"audio_path"`
	AudioOrigin string    `json:"audio_origin"`
	DryRun      bool      `json:"dry_run"`
	Status      RunStatus `json:"status"`
	Total       int       `json:"total"`
	Failed      int       `json:"failed"`
	Error       string    `json:"error,omitempty"`
}

// Outcome is one video's recorded result.
type Outcome struct {
	RunID      string        `json:"run_id"`
	Video      string        `json:"video"`
	Output     string        `json:"output,omitempty"`
	Status     OutcomeStatus `json:"status"`
	Error      string        `json:"error,omitempty"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Shortest   bool          `json:"shortest"`
	AudioCodec string        `json:"audio_codec,omitempty"`
	RecordedAt time.Time     `json:"recorded_at"`
}
