// Package bench wraps sort and search invocations with wall-clock timing and
// exports the results to an append-only CSV file.
//
// Timing is purely observational: the runner copies or borrows slices exactly
// as instructed by the caller and never inspects algorithm internals.
package bench

import (
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/bidbench/internal/domain/models"
	"github.com/guttosm/bidbench/internal/logger"
	"github.com/guttosm/bidbench/internal/sorting"
)

// SortFunc is a whole-slice sort. The range-based algorithms are adapted in
// Sorts below.
type SortFunc func([]models.Bid)

// Result is one timed algorithm invocation.
type Result struct {
	RunID      string        // uuid shared by all results of one RunAll invocation
	Algorithm  string        // e.g. "SelectionSort"
	DataSize   int           // number of bids the algorithm ran over
	Elapsed    time.Duration // wall-clock duration
	RecordedAt time.Time
}

// TimeMs returns the elapsed time in whole milliseconds, the resolution the
// results file records for sorts and loads.
func (r Result) TimeMs() int64 {
	return r.Elapsed.Milliseconds()
}

// Sorts lists the three algorithms in the order the benchmark suite runs them.
var Sorts = []struct {
	Name string
	Fn   SortFunc
}{
	{Name: "SelectionSort", Fn: sorting.SelectionSort},
	{Name: "QuickSort", Fn: func(b []models.Bid) { sorting.QuickSort(b, 0, len(b)-1) }},
	{Name: "MergeSort", Fn: func(b []models.Bid) { sorting.MergeSort(b, 0, len(b)-1) }},
}

// Run times a single sort over bids. The slice is mutated; pass a copy to
// preserve the caller's order.
func Run(runID, name string, bids []models.Bid, fn SortFunc) Result {
	start := time.Now()
	fn(bids)
	elapsed := time.Since(start)

	logger.L().Info().
		Str("run_id", runID).
		Str("algorithm", name).
		Int("data_size", len(bids)).
		Int64("elapsed_ms", elapsed.Milliseconds()).
		Msg("benchmark run")

	return Result{
		RunID:      runID,
		Algorithm:  name,
		DataSize:   len(bids),
		Elapsed:    elapsed,
		RecordedAt: time.Now().UTC(),
	}
}

// RunAll runs every algorithm in Sorts over a fresh copy of bids, so each one
// sees the same input order, and returns the results under a shared run id.
func RunAll(bids []models.Bid) []Result {
	runID := uuid.NewString()
	results := make([]Result, 0, len(Sorts))
	for _, s := range Sorts {
		work := append([]models.Bid(nil), bids...)
		results = append(results, Run(runID, s.Name, work, s.Fn))
	}
	return results
}
