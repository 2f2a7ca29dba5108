package batch

import (
	"fmt"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
)

// Outcome is the result of processing one video.
type Outcome struct {
	Video   string
	Output  string
	Plan    OutputPlan
	DryRun  bool
	Elapsed time.Duration
	Err     error
}

// Succeeded reports whether the video was processed (or planned, in a dry run)
// without error.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Result collects outcomes in processing order.
type Result struct {
	Outcomes []Outcome
}

// Failures returns the failed outcomes in processing order.
func (r Result) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Succeeded returns the number of successful outcomes.
func (r Result) Succeeded() int {
	count := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			count++
		}
	}
	return count
}

// Err returns a *FailureError when any video failed.
func (r Result) Err() error {
	if n := len(r.Failures()); n > 0 {
		return &FailureError{Count: n}
	}
	return nil
}

// FailureError summarises a batch with failed videos. It matches
// services.ErrBatch.
type FailureError struct {
	Count int
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%d video(s) failed", e.Count)
}

func (e *FailureError) Is(target error) bool {
	return target == services.ErrBatch
}
