// Package logging assembles the slog loggers used by the CLI and the batch
// pipeline.
//
// It owns the console and JSON handlers, maps the configured level and
// format onto them, optionally mirrors records into a JSON log file, and
// exposes context-aware helpers so processing code can tag records with the
// run identifier, stage, and video path. NewNop serves tests and wiring code
// that must not fail.
package logging
