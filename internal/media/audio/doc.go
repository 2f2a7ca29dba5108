// Package audio lists MP3 candidates and selects the single track a batch
// run uses.
//
// Selection is deterministic: candidates are sorted by file name and ties on
// modification time resolve to the first one. Name matching compares file
// names and stems after Unicode normalisation.
//
// Primary entry point:
//   - Select: applies a Policy to a directory and returns the chosen path
package audio
