package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/audio"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/source"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/testsupport"
)

type fakeCombiner struct {
	calls  int
	input  string
	output string
	err    error
}

func (f *fakeCombiner) Combine(_ context.Context, inputDir, output string) error {
	f.calls++
	f.input = inputDir
	f.output = output
	if f.err != nil {
		return f.err
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	return os.WriteFile(output, []byte("combined"), 0o644)
}

var fixedNow = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local) }

func TestResolveExplicitWins(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "mine.mp3")
	testsupport.WriteFile(t, explicit, "x")
	comb := &fakeCombiner{}

	src, err := source.Resolve(context.Background(), source.Request{
		ExplicitFile: explicit,
		AudioDir:     filepath.Join(dir, "audio"),
		Policy:       audio.PolicyLatest,
		Combine:      true,
	}, comb)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if src.Path != explicit || src.Origin != source.OriginExplicit {
		t.Fatalf("unexpected source %+v", src)
	}
	if comb.calls != 0 {
		t.Fatal("combiner must not run for an explicit file")
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	_, err := source.Resolve(context.Background(), source.Request{ExplicitFile: filepath.Join(t.TempDir(), "nope.mp3")}, nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestResolveSelectsFromAudioDir(t *testing.T) {
	audioDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(audioDir, "track.mp3"), "x")
	comb := &fakeCombiner{}

	src, err := source.Resolve(context.Background(), source.Request{AudioDir: audioDir, Policy: audio.PolicyLatest}, comb)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if src.Origin != source.OriginSelected || filepath.Base(src.Path) != "track.mp3" {
		t.Fatalf("unexpected source %+v", src)
	}
	if comb.calls != 0 {
		t.Fatal("combiner must not run when a file was selected")
	}
}

func TestResolveCombinesWhenNothingSelected(t *testing.T) {
	base := t.TempDir()
	audioDir := filepath.Join(base, "audio")
	inputDir := filepath.Join(base, "audio-input")
	comb := &fakeCombiner{}

	src, err := source.Resolve(context.Background(), source.Request{
		AudioDir: audioDir,
		Policy:   audio.PolicyLatest,
		InputDir: inputDir,
		Now:      fixedNow,
	}, comb)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := filepath.Join(audioDir, "2025.01.02-03.04.05.mp3")
	if src.Origin != source.OriginCombined || src.Path != want {
		t.Fatalf("unexpected source %+v, want path %q", src, want)
	}
	if comb.input != inputDir || comb.output != want {
		t.Fatalf("unexpected combine call input=%q output=%q", comb.input, comb.output)
	}
}

func TestResolveCombineWins(t *testing.T) {
	audioDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(audioDir, "existing.mp3"), "x")
	comb := &fakeCombiner{}

	src, err := source.Resolve(context.Background(), source.Request{
		AudioDir: audioDir,
		Policy:   audio.PolicyLatest,
		InputDir: t.TempDir(),
		Combine:  true,
		Now:      fixedNow,
	}, comb)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if src.Origin != source.OriginCombined || comb.calls != 1 {
		t.Fatalf("expected recombination, got %+v (calls=%d)", src, comb.calls)
	}
}

func TestResolvePropagatesErrors(t *testing.T) {
	audioDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(audioDir, "a.mp3"), "x")

	_, err := source.Resolve(context.Background(), source.Request{AudioDir: audioDir, Policy: audio.PolicyName}, &fakeCombiner{})
	if !errors.Is(err, services.ErrSelection) {
		t.Fatalf("expected selection error, got %v", err)
	}

	combineErr := services.Wrap(services.ErrCombine, "combine", "list", "no MP3 files found", nil)
	_, err = source.Resolve(context.Background(), source.Request{AudioDir: t.TempDir(), Policy: audio.PolicyLatest}, &fakeCombiner{err: combineErr})
	if !errors.Is(err, services.ErrCombine) {
		t.Fatalf("expected combine error, got %v", err)
	}
}
