package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a run does not exist
var ErrNotFound = errors.New("not found")

// RunRepository persists batch run summaries
type RunRepository struct {
	db *Database
}

// NewRunRepository creates a run repository
func NewRunRepository(db *Database) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a run and returns it with the stored creation time
func (r *RunRepository) Create(ctx context.Context, run *Run) (*Run, error) {
	query := `
		INSERT INTO sheet_runs (run_id, season_type, week, season_year, game_count, files)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING run_id, season_type, week, season_year, game_count, files, created_at
	`

	row := r.db.DB().QueryRowContext(ctx, query,
		run.RunID, string(run.SeasonType), run.Week, run.SeasonYear, run.GameCount, pq.Array(run.Files),
	)

	stored, err := scanRun(row)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return stored, nil
}

// GetByID finds a run by its ID
func (r *RunRepository) GetByID(ctx context.Context, runID string) (*Run, error) {
	query := `
		SELECT run_id, season_type, week, season_year, game_count, files, created_at
		FROM sheet_runs
		WHERE run_id = $1
	`

	run, err := scanRun(r.db.DB().QueryRowContext(ctx, query, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// Recent returns the most recent runs, newest first
func (r *RunRepository) Recent(ctx context.Context, limit int) ([]*Run, error) {
	query := `
		SELECT run_id, season_type, week, season_year, game_count, files, created_at
		FROM sheet_runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	run := &Run{}
	var seasonType string
	var files pq.StringArray
	if err := s.Scan(
		&run.RunID, &seasonType, &run.Week, &run.SeasonYear, &run.GameCount, &files, &run.CreatedAt,
	); err != nil {
		return nil, err
	}
	run.SeasonType = SeasonType(seasonType)
	run.Files = []string(files)
	return run, nil
}
