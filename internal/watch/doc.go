// Package watch turns filesystem events in the video directory into a
// sequential stream of settled files.
//
// A file becomes eligible once no create or write event has touched it for
// the settle delay, which keeps half-copied videos away from ffmpeg. Files
// the handler reports as produced (outputs, temporary files, in-place
// replacements) are muted briefly so the watcher never feeds on its own
// results.
package watch
