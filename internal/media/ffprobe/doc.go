// Package ffprobe reads media durations with ffprobe.
//
// Prober runs ffprobe once per call and parses its single-number output.
// MediaFile caches a duration per path so a file shared by a whole batch is
// probed only once.
package ffprobe
