package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/results"
	"github.com/roach88/ctsq/internal/selection"
)

// WriteResults appends results to a run and returns how many were new.
//
// Uses ON CONFLICT(run_id, query_id, tags) DO NOTHING for idempotency:
// a result whose query and tags are already in the run is ignored, even
// if its status differs.
func (s *Store) WriteResults(ctx context.Context, runID string, list results.List) (inserted int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write results: begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM runs WHERE id = ?)`, runID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("write results: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("write results: %w: %s", ErrRunNotFound, runID)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM results WHERE run_id = ?`, runID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("write results: next seq: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results
		(run_id, query_id, suite, query, level, tags, status, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, query_id, tags) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("write results: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range list {
		res, err := stmt.ExecContext(ctx,
			runID,
			query.ID(r.Query),
			r.Query.SuiteName(),
			r.Query.String(),
			int(r.Query.Level()),
			r.Tags.String(),
			string(r.Status),
			seq+1,
		)
		if err != nil {
			return 0, fmt.Errorf("write results: %s: %w", r.Query, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("write results: rows affected: %w", err)
		}
		if n > 0 {
			seq++
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write results: commit: %w", err)
	}

	slog.Debug("wrote results", "run", runID, "received", len(list), "inserted", inserted)
	return inserted, nil
}

// ReadResults returns the results of a run in write order. If filter is
// non-nil only results it selects are returned.
func (s *Store) ReadResults(ctx context.Context, runID string, filter query.Query) (results.List, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT query, tags, status
		FROM results
		WHERE run_id = ?`
	args := []any{runID}
	if filter != nil {
		sqlText += ` AND suite = ?`
		args = append(args, filter.SuiteName())
	}
	sqlText += ` ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	defer rows.Close()

	var out results.List
	for rows.Next() {
		var queryText, tagText, statusText string
		if err := rows.Scan(&queryText, &tagText, &statusText); err != nil {
			return nil, fmt.Errorf("read results: scan: %w", err)
		}
		r, err := decodeResult(queryText, tagText, statusText)
		if err != nil {
			return nil, fmt.Errorf("read results: %w", err)
		}
		if filter != nil && !selection.Matches(filter, r.Query) {
			continue
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	return out, nil
}

func decodeResult(queryText, tagText, statusText string) (results.Result, error) {
	q, err := query.Parse(queryText)
	if err != nil {
		return results.Result{}, fmt.Errorf("stored query %q: %w", queryText, err)
	}
	status, err := results.ParseStatus(statusText)
	if err != nil {
		return results.Result{}, err
	}
	var tags results.Tags
	if tagText != "" {
		tags = results.TagsFrom(strings.Split(tagText, results.TagSeparator)...)
	}
	return results.Result{Query: q, Tags: tags, Status: status}, nil
}
