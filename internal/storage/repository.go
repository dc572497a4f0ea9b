package storage

import (
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/bidbench/internal/bench"
)

// BenchmarkRepository defines the contract for the benchmark-result archive.
//
// The archive is the persistent sibling of the CSV export: every timed run
// can be batch-inserted, the API lists recent rows, and HasRun supports
// idempotent re-archiving of a run id.
type BenchmarkRepository interface {
	InsertResultsBatch(results []bench.Result) error
	ListRecent(limit int) ([]bench.Result, error)
	HasRun(runID string) (bool, error)
}

type benchmarkRepository struct {
	db *sql.DB
}

func NewBenchmarkRepository(db *sql.DB) BenchmarkRepository {
	return &benchmarkRepository{db: db}
}

// InsertResultsBatch inserts all results of one run in a single transaction
// using COPY for bulk speed.
func (r *benchmarkRepository) InsertResultsBatch(results []bench.Result) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"benchmark_results",
		"run_id",
		"algorithm",
		"data_size",
		"time_ms",
		"recorded_at",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, res := range results {
		recordedAt := res.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = time.Now().UTC()
		}
		if _, err := stmt.Exec(
			res.RunID,
			res.Algorithm,
			res.DataSize,
			res.TimeMs(),
			recordedAt,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListRecent returns up to limit archived results, newest first.
func (r *benchmarkRepository) ListRecent(limit int) ([]bench.Result, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT run_id, algorithm, data_size, time_ms, recorded_at
		FROM benchmark_results
		ORDER BY recorded_at DESC, algorithm
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []bench.Result
	for rows.Next() {
		var res bench.Result
		var timeMs int64
		if err := rows.Scan(&res.RunID, &res.Algorithm, &res.DataSize, &timeMs, &res.RecordedAt); err != nil {
			return nil, err
		}
		res.Elapsed = time.Duration(timeMs) * time.Millisecond
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// HasRun checks whether results for a given run id were already archived.
func (r *benchmarkRepository) HasRun(runID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM benchmark_results WHERE run_id = $1)`, runID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
