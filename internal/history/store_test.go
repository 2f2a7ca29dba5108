package history_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/history"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/testsupport"
)

func TestRunLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	run, err := store.BeginRun(ctx, history.RunInfo{
		VideoDir:    cfg.Paths.VideoDir,
		AudioPath:   "/audio/track.mp3",
		AudioOrigin: "selected",
	})
	if err != nil {
		t.Fatalf("BeginRun failed: %v", err)
	}
	if run.ID == "" || run.Status != history.RunRunning {
		t.Fatalf("unexpected run %#v", run)
	}

	outcomes := []history.Outcome{
		{Video: "a.mp4", Output: "a_new.mp4", Status: history.OutcomeOK, Elapsed: 1500 * time.Millisecond, AudioCodec: "aac"},
		{Video: "b.mp4", Status: history.OutcomeFailed, Error: "ffmpeg exited with code 1"},
		{Video: "c.mp4", Output: "c_new.mp4", Status: history.OutcomeOK, Shortest: true},
	}
	for _, o := range outcomes {
		if err := store.RecordOutcome(ctx, run.ID, o); err != nil {
			t.Fatalf("RecordOutcome failed: %v", err)
		}
	}
	if err := store.FinishRun(ctx, run.ID, history.RunFailed, "1 video(s) failed"); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	fetched, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if fetched.Total != 3 || fetched.Failed != 1 || fetched.Status != history.RunFailed {
		t.Fatalf("unexpected counters %#v", fetched)
	}
	if fetched.FinishedAt.IsZero() || fetched.Error != "1 video(s) failed" {
		t.Fatalf("finish fields not stored: %#v", fetched)
	}

	stored, err := store.Outcomes(ctx, run.ID)
	if err != nil {
		t.Fatalf("Outcomes failed: %v", err)
	}
	if len(stored) != 3 || stored[0].Video != "a.mp4" || stored[2].Video != "c.mp4" {
		t.Fatalf("unexpected outcomes %#v", stored)
	}
	if stored[0].Elapsed != 1500*time.Millisecond || stored[0].AudioCodec != "aac" {
		t.Fatalf("outcome fields lost: %#v", stored[0])
	}
	if !stored[2].Shortest || stored[1].Error == "" {
		t.Fatalf("outcome flags lost: %#v", stored)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := store.BeginRun(ctx, history.RunInfo{VideoDir: "v", AudioPath: "a.mp3", AudioOrigin: "explicit"})
		if err != nil {
			t.Fatalf("BeginRun failed: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Fatalf("unexpected order %v vs %v", runs, ids)
	}

	all, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all runs, got %d", len(all))
	}
}

func TestGetRunMissing(t *testing.T) {
	store := testsupport.MustOpenHistory(t, testsupport.NewConfig(t))
	if _, err := store.GetRun(context.Background(), "nope"); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
	if err := store.FinishRun(context.Background(), "nope", history.RunSucceeded, ""); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound from FinishRun, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	run, err := store.BeginRun(context.Background(), history.RunInfo{VideoDir: "v", AudioPath: "a.mp3", AudioOrigin: "combined", DryRun: true})
	if err != nil {
		t.Fatalf("BeginRun failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := history.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.GetRun(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if !got.DryRun || got.AudioOrigin != "combined" {
		t.Fatalf("unexpected run after reopen %#v", got)
	}
}

func TestOpenRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	if err := os.WriteFile(path, []byte("not a database, just text padding the header out"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := history.Open(path); err == nil {
		t.Fatal("expected error opening a non-database file")
	}
}
