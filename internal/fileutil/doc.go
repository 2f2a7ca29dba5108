// Package fileutil holds the filesystem helpers used when committing
// processed videos: an atomic same-directory replace and small existence
// checks.
package fileutil
