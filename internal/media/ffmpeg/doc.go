// Package ffmpeg builds ffmpeg argument lists and runs ffmpeg and ffprobe.
//
// Runner abstracts process execution so callers can be tested with recording
// fakes; ExecRunner is the os/exec implementation. Failed invocations surface
// as *ToolError carrying the exit code and the tail of stderr.
package ffmpeg
