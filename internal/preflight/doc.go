// Package preflight verifies directory access before a batch starts, so a
// permissions problem is reported once instead of as one failure per video.
package preflight
