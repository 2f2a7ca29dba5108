// Package services defines shared utilities consumed by the audio selection,
// combine, and batch packages.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     into fatal run errors versus per-video failures.
//   - ExitCode, which translates those markers into process exit statuses.
//   - Context helpers that stamp run identifiers, stages, and video paths for
//     logging.
//
// Use these helpers when wiring new processing steps so error handling and
// observability stay uniform across the tool.
package services
