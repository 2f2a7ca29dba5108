package ffmpeg

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ReplaceAudioRequest describes one audio replacement remux.
type ReplaceAudioRequest struct {
	Video     string
	Audio     string
	Output    string
	Codec     string
	Shortest  bool
	Overwrite bool
}

// ReplaceAudioArgs builds the ffmpeg arguments that copy the first video
// stream of the video input and encode the first audio stream of the audio
// input into Codec.
func ReplaceAudioArgs(req ReplaceAudioRequest) []string {
	args := make([]string, 0, 20)
	if req.Overwrite {
		args = append(args, "-y")
	}
	args = append(args,
		"-hide_banner",
		"-stats",
		"-i", req.Video,
		"-i", req.Audio,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", req.Codec,
	)
	if req.Shortest {
		args = append(args, "-shortest")
	}
	return append(args, req.Output)
}

// ConcatArgs builds the ffmpeg arguments that concatenate the files listed in
// manifest and encode them with codec at VBR quality.
func ConcatArgs(manifest, output, codec string, quality int) []string {
	return []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", manifest,
		"-c:a", codec,
		"-q:a", strconv.Itoa(quality),
		output,
	}
}

// CodecForPath picks the audio codec for an output container.
func CodecForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webm":
		return "opus"
	case ".mp4", ".mov", ".m4v", ".mkv":
		return "aac"
	case ".avi":
		return "mp3"
	default:
		return "aac"
	}
}
