package batch

import (
	"path/filepath"
	"strings"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/media/ffmpeg"
)

// shortestTolerance absorbs float noise between probed durations.
const shortestTolerance = 0.01

// inPlaceSuffix marks the sibling file written before an in-place replace.
const inPlaceSuffix = "_tmp"

// OutputPlan is everything decided about one video before ffmpeg runs.
type OutputPlan struct {
	Video         string
	Output        string
	InPlace       bool
	Overwrite     bool
	Shortest      bool
	AudioCodec    string
	VideoDuration float64
	AudioDuration float64
}

// OutputPath returns where the remuxed video for video is written.
func OutputPath(video, suffix string, inPlace bool) string {
	ext := filepath.Ext(video)
	stem := strings.TrimSuffix(video, ext)
	if inPlace {
		return stem + inPlaceSuffix + ext
	}
	return stem + suffix + ext
}

// UseShortest reports whether the output must be cut to the shorter stream.
func UseShortest(audioDuration, videoDuration float64) bool {
	return audioDuration > videoDuration+shortestTolerance
}

// BuildPlan derives the OutputPlan for one video.
func BuildPlan(video string, videoDuration, audioDuration float64, opts Options) OutputPlan {
	output := OutputPath(video, opts.Suffix, opts.InPlace)
	codec := strings.TrimSpace(opts.AudioCodec)
	if codec == "" {
		codec = ffmpeg.CodecForPath(output)
	}
	return OutputPlan{
		Video:         video,
		Output:        output,
		InPlace:       opts.InPlace,
		Overwrite:     opts.Overwrite,
		Shortest:      UseShortest(audioDuration, videoDuration),
		AudioCodec:    codec,
		VideoDuration: videoDuration,
		AudioDuration: audioDuration,
	}
}

// Args returns the ffmpeg arguments that execute plan with audioPath.
func (p OutputPlan) Args(audioPath string) []string {
	return ffmpeg.ReplaceAudioArgs(ffmpeg.ReplaceAudioRequest{
		Video:     p.Video,
		Audio:     audioPath,
		Output:    p.Output,
		Codec:     p.AudioCodec,
		Shortest:  p.Shortest,
		Overwrite: p.Overwrite || p.InPlace,
	})
}

// IsOutputName reports whether path looks like a file this package writes:
// a "_tmp" sibling, or a suffixed output when suffix is non-empty.
func IsOutputName(path, suffix string) bool {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.HasSuffix(stem, inPlaceSuffix) {
		return true
	}
	return suffix != "" && strings.HasSuffix(stem, suffix)
}
