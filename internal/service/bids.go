package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/bidbench/internal/bench"
	"github.com/guttosm/bidbench/internal/domain/models"
	"github.com/guttosm/bidbench/internal/loader"
	"github.com/guttosm/bidbench/internal/logger"
	"github.com/guttosm/bidbench/internal/search"
	"github.com/guttosm/bidbench/internal/sorting"
	"github.com/guttosm/bidbench/internal/store"
)

// BidService defines the operations the menu and the API dispatch to: loading
// the store, sorting it, searching it, and running the benchmark suite.
//
// It replaces the original program's globals with an explicit session object;
// one BidService owns one BidStore.
type BidService interface {
	Load(ctx context.Context, path string) (int, error)
	All() []models.Bid
	Len() int
	Sort(algorithm string) (bench.Result, error)
	SearchTitle(title string) (models.Bid, time.Duration, bool)
	FindByTitle(title string) (models.Bid, time.Duration, bool)
	SearchID(id string) (models.Bid, time.Duration, bool)
	RunBenchmarks() ([]bench.Result, error)
}

// Archiver is the subset of the storage repository the service needs. Nil
// means benchmark results are only written to the CSV file.
type Archiver interface {
	InsertResultsBatch(results []bench.Result) error
}

type bidService struct {
	store    *store.BidStore
	exporter *bench.Exporter
	archive  Archiver
}

// NewBidService wires a service around an empty store. archive may be nil.
func NewBidService(exporter *bench.Exporter, archive Archiver) BidService {
	return &bidService{
		store:    store.New(),
		exporter: exporter,
		archive:  archive,
	}
}

// loadParallel caps concurrent file reads when loading a glob pattern.
const loadParallel = 4

// Load replaces the store contents with the bids read from path and rebuilds
// the id index. A path containing glob metacharacters loads every matching
// file concurrently; a plain path is read sequentially. On a partial read the
// successfully loaded bids are kept and the error is returned alongside their
// count.
func (s *bidService) Load(ctx context.Context, path string) (int, error) {
	start := time.Now()

	var bids []models.Bid
	var err error
	if strings.ContainsAny(path, "*?[") {
		bids, err = loader.LoadGlob(ctx, path, loadParallel)
	} else {
		bids, err = loader.LoadFile(ctx, path)
	}
	s.store.Reload(bids)

	if err != nil {
		logger.L().Error().Str("file", path).Int("bids", len(bids)).Err(err).Msg("load incomplete")
		return len(bids), err
	}
	logger.L().Info().Str("file", path).Int("bids", len(bids)).Int64("elapsed_ms", time.Since(start).Milliseconds()).Msg("bids loaded")
	return len(bids), nil
}

// All returns the store's ordered sequence.
func (s *bidService) All() []models.Bid {
	return s.store.Bids()
}

// Len returns the number of loaded bids.
func (s *bidService) Len() int {
	return s.store.Len()
}

// Sort runs one named algorithm over a snapshot of the store, adopts the
// sorted order, and appends the timing to the results file. The id index is
// left untouched: sorting never changes which bids exist.
func (s *bidService) Sort(algorithm string) (bench.Result, error) {
	for _, alg := range bench.Sorts {
		if alg.Name != algorithm {
			continue
		}
		work := s.store.Snapshot()
		res := bench.Run(uuid.NewString(), alg.Name, work, alg.Fn)
		s.store.Adopt(work)

		if err := s.exporter.Export(res); err != nil {
			return res, fmt.Errorf("export benchmark: %w", err)
		}
		return res, nil
	}
	return bench.Result{}, fmt.Errorf("unknown sort algorithm %q", algorithm)
}

// SearchTitle binary-searches the current sequence for an exact title match
// and reports the elapsed wall-clock time.
//
// The sequence must already be sorted by title (run a sort first); with an
// unsorted store the result is unspecified, per the search package contract.
func (s *bidService) SearchTitle(title string) (models.Bid, time.Duration, bool) {
	bids := s.store.Bids()

	start := time.Now()
	idx := search.ByTitle(bids, title)
	elapsed := time.Since(start)

	logger.L().Debug().Str("title", title).Int("index", idx).Int64("elapsed_us", elapsed.Microseconds()).Msg("title search")

	if idx == search.NotFound {
		return models.Bid{}, elapsed, false
	}
	return bids[idx], elapsed, true
}

// FindByTitle binary-searches a sorted snapshot of the store, satisfying the
// search precondition itself instead of relying on the caller. The store's
// order is not changed and no benchmark row is recorded; only the search
// itself is timed. Used by the HTTP surface, where callers cannot be expected
// to have run a sort first.
func (s *bidService) FindByTitle(title string) (models.Bid, time.Duration, bool) {
	work := s.store.Snapshot()
	sorting.MergeSort(work, 0, len(work)-1)

	start := time.Now()
	idx := search.ByTitle(work, title)
	elapsed := time.Since(start)

	if idx == search.NotFound {
		return models.Bid{}, elapsed, false
	}
	return work[idx], elapsed, true
}

// SearchID looks a bid up by identifier via the store's index. Works in any
// sort order.
func (s *bidService) SearchID(id string) (models.Bid, time.Duration, bool) {
	start := time.Now()
	bid, ok := s.store.ByID(id)
	elapsed := time.Since(start)

	logger.L().Debug().Str("bid_id", id).Bool("found", ok).Int64("elapsed_us", elapsed.Microseconds()).Msg("id lookup")
	return bid, elapsed, ok
}

// RunBenchmarks times every sort algorithm over fresh copies of the current
// sequence, appends each result to the results file, and archives the run to
// Postgres when an archiver is configured. The store order is not changed.
func (s *bidService) RunBenchmarks() ([]bench.Result, error) {
	results := bench.RunAll(s.store.Bids())

	if err := s.exporter.ExportAll(results); err != nil {
		return results, fmt.Errorf("export benchmarks: %w", err)
	}
	if s.archive != nil {
		if err := s.archive.InsertResultsBatch(results); err != nil {
			return results, fmt.Errorf("archive benchmarks: %w", err)
		}
	}
	return results, nil
}
