package audio_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/audio"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/services"
	"github.com/LinuxLinusDE/AudioSwitcher/internal/testsupport"
)

func writeAt(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	testsupport.WriteFile(t, path, name)
	testsupport.SetModTime(t, path, mtime)
	return path
}

func TestSelectLatestAndOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	writeAt(t, dir, "b.mp3", base.Add(2*time.Hour))
	writeAt(t, dir, "a.mp3", base.Add(1*time.Hour))
	writeAt(t, dir, "c.MP3", base.Add(3*time.Hour))
	writeAt(t, dir, "notes.txt", base.Add(10*time.Hour))

	tests := []struct {
		policy audio.Policy
		want   string
	}{
		{audio.PolicyLatest, "c.MP3"},
		{audio.PolicyOldest, "a.mp3"},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			got, found, err := audio.Select(dir, tt.policy, "")
			if err != nil {
				t.Fatalf("Select returned error: %v", err)
			}
			if !found {
				t.Fatal("expected a selection")
			}
			if filepath.Base(got) != tt.want {
				t.Fatalf("Select() = %q, want %q", filepath.Base(got), tt.want)
			}
		})
	}
}

func TestSelectTiesResolveToFirstByName(t *testing.T) {
	dir := t.TempDir()
	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	writeAt(t, dir, "zeta.mp3", same)
	writeAt(t, dir, "alpha.mp3", same)
	writeAt(t, dir, "mid.mp3", same)

	for _, policy := range []audio.Policy{audio.PolicyLatest, audio.PolicyOldest} {
		for i := 0; i < 3; i++ {
			got, _, err := audio.Select(dir, policy, "")
			if err != nil {
				t.Fatalf("Select returned error: %v", err)
			}
			if filepath.Base(got) != "alpha.mp3" {
				t.Fatalf("%s tie resolved to %q, want alpha.mp3", policy, filepath.Base(got))
			}
		}
	}
}

func TestSelectEmptyOrMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "readme.txt"), "x")
	for _, target := range []string{dir, filepath.Join(dir, "absent")} {
		for _, policy := range []audio.Policy{audio.PolicyLatest, audio.PolicyOldest, audio.PolicyName} {
			path, found, err := audio.Select(target, policy, "anything")
			if err != nil || found || path != "" {
				t.Fatalf("Select(%s, %s) = %q, %v, %v; want not found", target, policy, path, found, err)
			}
		}
	}
}

func TestSelectIgnoresDirectoriesNamedLikeMP3(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "folder.mp3", "inner.txt"), "x")
	_, found, err := audio.Select(dir, audio.PolicyLatest, "")
	if err != nil || found {
		t.Fatalf("expected directory to be ignored, found=%v err=%v", found, err)
	}
}

func TestSelectByName(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		files   []string
		request string
		want    string
	}{
		{"exact with extension", []string{"intro.mp3", "outro.mp3"}, "intro.mp3", "intro.mp3"},
		{"stem only", []string{"intro.mp3", "outro.mp3"}, "intro", "intro.mp3"},
		{"wrong extension resolves to mp3 sibling", []string{"intro.mp3", "intro.wav"}, "intro.wav", "intro.mp3"},
		{"exact non-mp3 when no sibling", []string{"intro.mp3", "theme.wav"}, "theme.wav", "theme.wav"},
		{"uppercase extension via scan", []string{"Theme.MP3"}, "Theme", "Theme.MP3"},
		{"decomposed unicode stem", []string{"cafe\u0301.mp3"}, "caf\u00e9", "cafe\u0301.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				writeAt(t, dir, f, now)
			}
			got, found, err := audio.Select(dir, audio.PolicyName, tt.request)
			if err != nil {
				t.Fatalf("Select returned error: %v", err)
			}
			if !found || filepath.Base(got) != tt.want {
				t.Fatalf("Select() = %q (found=%v), want %q", got, found, tt.want)
			}
		})
	}
}

func TestSelectByNameErrors(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeAt(t, dir, "song.mp3", now)
	writeAt(t, dir, "other.mp3", now)

	if _, _, err := audio.Select(dir, audio.PolicyName, ""); !errors.Is(err, services.ErrSelection) {
		t.Fatalf("expected selection error for empty name, got %v", err)
	}
	if _, _, err := audio.Select(dir, audio.PolicyName, "missing"); !errors.Is(err, services.ErrSelection) {
		t.Fatalf("expected selection error for unknown name, got %v", err)
	}
}

func TestSelectByNameAmbiguousListsAllMatches(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeAt(t, dir, "take.MP3", now)
	writeAt(t, dir, "take.Mp3", now)
	writeAt(t, dir, "other.mp3", now)

	_, found, err := audio.Select(dir, audio.PolicyName, "take")
	if !errors.Is(err, services.ErrSelection) {
		t.Fatalf("expected selection error, got %v (found=%v)", err, found)
	}
	for _, name := range []string{"take.MP3", "take.Mp3"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %q listed in %q", name, err.Error())
		}
	}
}

func TestParsePolicy(t *testing.T) {
	for _, input := range []string{"latest", "OLDEST", " name "} {
		if _, err := audio.ParsePolicy(input); err != nil {
			t.Fatalf("ParsePolicy(%q) returned error: %v", input, err)
		}
	}
	_, err := audio.ParsePolicy("random")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "random") {
		t.Fatalf("expected value in error, got %v", err)
	}
}
