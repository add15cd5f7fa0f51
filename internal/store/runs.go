package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned when a run id is not in the store.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded set of results.
type Run struct {
	ID        string
	Seq       int64
	Label     string
	CreatedAt time.Time
	Results   int
}

// CreateRun starts a new run and returns it.
func (s *Store) CreateRun(ctx context.Context, label string) (Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("create run: begin tx: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return Run{}, fmt.Errorf("create run: next seq: %w", err)
	}

	run := Run{
		ID:        s.ids.Generate(),
		Seq:       seq,
		Label:     label,
		CreatedAt: s.clock.Now().UTC().Truncate(time.Second),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, label, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Seq, run.Label, run.CreatedAt.Unix())
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("create run: commit: %w", err)
	}
	return run, nil
}

// GetRun returns the run with the given id.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, runSelect+` WHERE r.id = ? GROUP BY r.id`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recently created run.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	row := s.db.QueryRowContext(ctx, runSelect+` GROUP BY r.id ORDER BY r.seq DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// ListRuns returns every run, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, runSelect+` GROUP BY r.id ORDER BY r.seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

const runSelect = `
	SELECT r.id, r.seq, r.label, r.created_at, COUNT(res.query_id)
	FROM runs r
	LEFT JOIN results res ON res.run_id = r.id`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var created int64
	if err := sc.Scan(&run.ID, &run.Seq, &run.Label, &created, &run.Results); err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(created, 0).UTC()
	return run, nil
}
