package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("run not found")

const runColumns = "id, started_at, finished_at, video_dir, audio_path, audio_origin, dry_run, status, total, failed, error_message"

// BeginRun records the start of a run and returns it with a fresh ID.
func (s *Store) BeginRun(ctx context.Context, info RunInfo) (Run, error) {
	run := Run{
		ID:          uuid.NewString(),
		StartedAt:   time.Now().UTC(),
		VideoDir:    info.VideoDir,
		AudioPath:   info.AudioPath,
		AudioOrigin: info.AudioOrigin,
		DryRun:      info.DryRun,
		Status:      RunRunning,
	}
	_, err := s.exec(ctx,
		`INSERT INTO runs (id, started_at, video_dir, audio_path, audio_origin, dry_run, status)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		formatTime(run.StartedAt),
		run.VideoDir,
		run.AudioPath,
		run.AudioOrigin,
		boolToInt(run.DryRun),
		run.Status,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// RecordOutcome appends one video result to runID.
func (s *Store) RecordOutcome(ctx context.Context, runID string, outcome Outcome) error {
	recorded := outcome.RecordedAt
	if recorded.IsZero() {
		recorded = time.Now()
	}
	_, err := s.exec(ctx,
		`INSERT INTO outcomes (run_id, video, output, status, error_message, elapsed_ms, shortest, audio_codec, recorded_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		outcome.Video,
		nullableString(outcome.Output),
		outcome.Status,
		nullableString(outcome.Error),
		outcome.Elapsed.Milliseconds(),
		boolToInt(outcome.Shortest),
		nullableString(outcome.AudioCodec),
		formatTime(recorded),
	)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

// FinishRun closes runID with status and derives its counters from the
// recorded outcomes.
func (s *Store) FinishRun(ctx context.Context, runID string, status RunStatus, message string) error {
	res, err := s.exec(ctx,
		`UPDATE runs
         SET finished_at = ?, status = ?, error_message = ?,
             total = (SELECT COUNT(1) FROM outcomes WHERE run_id = runs.id),
             failed = (SELECT COUNT(1) FROM outcomes WHERE run_id = runs.id AND status = ?)
         WHERE id = ?`,
		formatTime(time.Now()),
		status,
		nullableString(message),
		OutcomeFailed,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit
// returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns the run with id.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// Outcomes returns the outcomes of runID in recording order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]Outcome, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, video, output, status, error_message, elapsed_ms, shortest, audio_codec, recorded_at
         FROM outcomes WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var (
			o          Outcome
			status     string
			output     sql.NullString
			errMsg     sql.NullString
			elapsedMS  int64
			shortest   int
			codec      sql.NullString
			recordedAt sql.NullString
		)
		if err := rows.Scan(&o.RunID, &o.Video, &output, &status, &errMsg, &elapsedMS, &shortest, &codec, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.Output = output.String
		o.Status = OutcomeStatus(status)
		o.Error = errMsg.String
		o.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		o.Shortest = shortest != 0
		o.AudioCodec = codec.String
		o.RecordedAt = parseTime(recordedAt)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run        Run
		startedAt  sql.NullString
		finishedAt sql.NullString
		dryRun     int
		status     string
		errMsg     sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&startedAt,
		&finishedAt,
		&run.VideoDir,
		&run.AudioPath,
		&run.AudioOrigin,
		&dryRun,
		&status,
		&run.Total,
		&run.Failed,
		&errMsg,
	); err != nil {
		return Run{}, err
	}
	run.StartedAt = parseTime(startedAt)
	run.FinishedAt = parseTime(finishedAt)
	run.DryRun = dryRun != 0
	run.Status = RunStatus(status)
	run.Error = errMsg.String
	return run, nil
}
