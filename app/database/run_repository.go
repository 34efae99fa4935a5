package database

import (
	"database/sql"
	"fmt"
)

// RunRepositoryImpl handles database operations for scrape runs
type RunRepositoryImpl struct {
	db *DB
}

var _ RunRepository = (*RunRepositoryImpl)(nil)

// NewRunRepository creates a new run repository
func NewRunRepository(db *DB) *RunRepositoryImpl {
	return &RunRepositoryImpl{db: db}
}

// CreateRun stores one scrape run and returns its id
func (r *RunRepositoryImpl) CreateRun(run Run) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO runs (query, region, pages_requested, pages_fetched, ad_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.Query, run.Region, run.PagesRequested, run.PagesFetched, run.AdCount,
		run.StartedAt.UTC(), run.FinishedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	return id, nil
}

// GetRun returns one run by id, or nil when it does not exist
func (r *RunRepositoryImpl) GetRun(id int64) (*Run, error) {
	var run Run
	err := r.db.QueryRow(`
		SELECT id, query, region, pages_requested, pages_fetched, ad_count, started_at, finished_at
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Query, &run.Region, &run.PagesRequested,
		&run.PagesFetched, &run.AdCount, &run.StartedAt, &run.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &run, nil
}

// GetRuns returns up to limit runs, most recent first
func (r *RunRepositoryImpl) GetRuns(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT id, query, region, pages_requested, pages_fetched, ad_count, started_at, finished_at
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Query, &run.Region, &run.PagesRequested,
			&run.PagesFetched, &run.AdCount, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// GetRunCount returns the number of archived runs
func (r *RunRepositoryImpl) GetRunCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}
