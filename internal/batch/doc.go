// Package batch applies one audio track to every video in a directory.
//
// Videos are discovered by extension, processed strictly one after another in
// path order, and each produces an Outcome. A failed video never stops the
// batch; Result.Err summarises failures once everything has run. In-place
// mode writes a sibling "_tmp" file and only replaces the original after
// ffmpeg succeeds.
//
// Key types:
//   - OutputPlan: output path, codec, and truncation decided per video
//   - Outcome / Result: per-video results in processing order
//
// Primary entry point:
//   - Processor.ProcessAll
package batch
