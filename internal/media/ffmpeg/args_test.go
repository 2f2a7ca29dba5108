package ffmpeg

import (
	"reflect"
	"testing"
)

func TestReplaceAudioArgs(t *testing.T) {
	tests := []struct {
		name string
		req  ReplaceAudioRequest
		want []string
	}{
		{
			name: "plain",
			req:  ReplaceAudioRequest{Video: "v/clip.mp4", Audio: "a/t.mp3", Output: "v/clip_newaudio.mp4", Codec: "aac"},
			want: []string{"-hide_banner", "-stats", "-i", "v/clip.mp4", "-i", "a/t.mp3", "-map", "0:v:0", "-map", "1:a:0", "-c:v", "copy", "-c:a", "aac", "v/clip_newaudio.mp4"},
		},
		{
			name: "overwrite and shortest",
			req:  ReplaceAudioRequest{Video: "v/clip.webm", Audio: "a/t.mp3", Output: "v/clip_tmp.webm", Codec: "opus", Shortest: true, Overwrite: true},
			want: []string{"-y", "-hide_banner", "-stats", "-i", "v/clip.webm", "-i", "a/t.mp3", "-map", "0:v:0", "-map", "1:a:0", "-c:v", "copy", "-c:a", "opus", "-shortest", "v/clip_tmp.webm"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceAudioArgs(tt.req); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReplaceAudioArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConcatArgs(t *testing.T) {
	got := ConcatArgs("/tmp/x/concat.txt", "audio/out.mp3", "libmp3lame", 2)
	want := []string{"-y", "-f", "concat", "-safe", "0", "-i", "/tmp/x/concat.txt", "-c:a", "libmp3lame", "-q:a", "2", "audio/out.mp3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ConcatArgs() = %v, want %v", got, want)
	}
}

func TestCodecForPath(t *testing.T) {
	tests := map[string]string{
		"clip.webm": "opus",
		"clip.WEBM": "opus",
		"clip.mp4":  "aac",
		"clip.mov":  "aac",
		"clip.m4v":  "aac",
		"clip.mkv":  "aac",
		"clip.avi":  "mp3",
		"clip.xyz":  "aac",
		"noext":     "aac",
	}
	for path, want := range tests {
		if got := CodecForPath(path); got != want {
			t.Fatalf("CodecForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestTailKeepsLastLines(t *testing.T) {
	stderr := "line1\nframe=1\rframe=2\r\nline3\n\n"
	if got := Tail(stderr, 2); got != "frame=2\nline3" {
		t.Fatalf("Tail() = %q", got)
	}
	if got := Tail(stderr, 0); got != "" {
		t.Fatalf("Tail(0) = %q", got)
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := &ToolError{Binary: "/usr/bin/ffmpeg", ExitCode: 1, StderrTail: "a\nInvalid data found"}
	if got := err.Error(); got != "ffmpeg exited with code 1: Invalid data found" {
		t.Fatalf("unexpected message %q", got)
	}
}
