// Package source resolves the one audio track a run applies to every video:
// an explicit file, a file selected from the audio directory, or a freshly
// combined track.
package source
