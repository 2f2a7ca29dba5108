package batch

import (
	"slices"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		video   string
		suffix  string
		inPlace bool
		want    string
	}{
		{name: "suffix", video: "/v/clip.mp4", suffix: "_dub", want: "/v/clip_dub.mp4"},
		{name: "in place", video: "/v/clip.mp4", suffix: "_dub", inPlace: true, want: "/v/clip_tmp.mp4"},
		{name: "dotted stem", video: "/v/a.b.mkv", suffix: "_x", want: "/v/a.b_x.mkv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.video, tt.suffix, tt.inPlace); got != tt.want {
				t.Fatalf("OutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUseShortestTolerance(t *testing.T) {
	if UseShortest(10.005, 10) {
		t.Fatal("10.005s audio against 10s video is within tolerance")
	}
	if !UseShortest(10.02, 10) {
		t.Fatal("10.02s audio against 10s video should be trimmed")
	}
	if UseShortest(5, 10) {
		t.Fatal("shorter audio never trims")
	}
}

func TestBuildPlanCodec(t *testing.T) {
	plan := BuildPlan("/v/clip.webm", 10, 12, Options{Suffix: "_new"})
	if plan.AudioCodec != "opus" {
		t.Fatalf("expected opus for webm, got %q", plan.AudioCodec)
	}
	if !plan.Shortest {
		t.Fatal("expected shortest for longer audio")
	}

	plan = BuildPlan("/v/clip.webm", 10, 12, Options{Suffix: "_new", AudioCodec: "libvorbis"})
	if plan.AudioCodec != "libvorbis" {
		t.Fatalf("override ignored, got %q", plan.AudioCodec)
	}
}

func TestPlanArgs(t *testing.T) {
	plan := BuildPlan("/v/clip.mp4", 10, 20, Options{InPlace: true})
	args := plan.Args("/a/track.mp3")
	if args[0] != "-y" {
		t.Fatalf("in-place runs must pass -y, got %v", args)
	}
	if !slices.Contains(args, "-shortest") {
		t.Fatalf("expected -shortest in %v", args)
	}
	if args[len(args)-1] != "/v/clip_tmp.mp4" {
		t.Fatalf("expected tmp output last, got %v", args)
	}
}

func TestIsOutputName(t *testing.T) {
	tests := []struct {
		path   string
		suffix string
		want   bool
	}{
		{"/v/clip_newaudio.mp4", "_newaudio", true},
		{"/v/clip_tmp.mkv", "_newaudio", true},
		{"/v/clip.mp4", "_newaudio", false},
		{"/v/clip.mp4", "", false},
	}
	for _, tt := range tests {
		if got := IsOutputName(tt.path, tt.suffix); got != tt.want {
			t.Fatalf("IsOutputName(%q, %q) = %v, want %v", tt.path, tt.suffix, got, tt.want)
		}
	}
}
