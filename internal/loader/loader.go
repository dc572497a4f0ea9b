// Package loader reads procurement bid CSV files into memory.
//
// The file format is the eBid monthly sales export: a header row followed by
// data rows with at least 9 columns, of which four are consumed (title, id,
// amount, fund). Parsing is tolerant: a malformed amount becomes zero and a
// short row is skipped, because the loader's contract is to return whatever it
// could read rather than abort the program.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bidbench/internal/domain/models"
	"github.com/guttosm/bidbench/internal/logger"
)

// Consumed column positions in a bid row. The remaining columns of the export
// (description, dates, inventory id, ...) are ignored.
const (
	colTitle  = 0
	colID     = 1
	colAmount = 4
	colFund   = 8

	minColumns = 9
)

// LoadFile reads bids from one CSV file.
//
// The first row is treated as the header and discarded. Data rows shorter than
// 9 columns are skipped with a warning. If the reader fails mid-file (bare
// quote, truncated record, ...) the bids read so far are returned together
// with the error; a missing file returns an empty slice and the open error.
//
// Parameters:
//   - ctx:     context checked between rows.
//   - csvPath: path of the CSV file to read.
//
// Returns:
//   - []models.Bid: bids successfully read (possibly empty, never nil).
//   - error: open or read failure, if any.
func LoadFile(ctx context.Context, csvPath string) ([]models.Bid, error) {
	bids := []models.Bid{}

	f, err := os.Open(csvPath)
	if err != nil {
		return bids, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // column count checked per row

	// Header row: present in every eBid export, not mapped to a bid.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return bids, nil
		}
		return bids, fmt.Errorf("read header: %w", err)
	}

	line := 1 // header already read
	for {
		select {
		case <-ctx.Done():
			return bids, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return bids, nil
			}
			// Partial result: keep what was read before the failure.
			return bids, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) < minColumns {
			logger.L().Warn().Str("file", csvPath).Int("line", line).Int("columns", len(rec)).Msg("short row skipped")
			continue
		}

		bids = append(bids, recordToBid(rec))
	}
}

// recordToBid maps one CSV record (length >= 9) onto a Bid. It never fails:
// a malformed or negative amount degrades to zero.
func recordToBid(rec []string) models.Bid {
	return models.Bid{
		Title:  rec[colTitle],
		BidID:  rec[colID],
		Fund:   rec[colFund],
		Amount: parseAmount(rec[colAmount]),
	}
}

// parseAmount converts an amount cell such as "$125.50" to its numeric value.
// The currency symbol is stripped before parsing. Malformed input parses to
// zero, and negative values are clamped to zero so the amount is always
// non-negative.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "$", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// LoadGlob reads every CSV file matching pattern concurrently and returns the
// concatenation of their bids in lexical filename order.
//
// Unlike LoadFile this fails fast: the first file error cancels the remaining
// reads via the errgroup context.
//
// Parameters:
//   - ctx:      parent context.
//   - pattern:  filepath.Glob pattern, e.g. "data/*.csv".
//   - parallel: max files read at once; values < 1 mean one at a time.
//
// Returns:
//   - []models.Bid: all bids from all matched files.
//   - error: glob failure, no matches, or the first file error.
func LoadGlob(ctx context.Context, pattern string, parallel int) ([]models.Bid, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(paths)

	if parallel < 1 {
		parallel = 1
	}

	logger.L().Info().Int("files", len(paths)).Str("pattern", pattern).Msg("load start")

	perFile := make([][]models.Bid, len(paths))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, path := range paths {
		idx := i
		p := path
		g.Go(func() error {
			got, err := LoadFile(gctx, p)
			if err != nil {
				logger.L().Error().Str("file", p).Err(err).Msg("load failed")
				return fmt.Errorf("file %s: %w", p, err)
			}
			mu.Lock()
			perFile[idx] = got
			mu.Unlock()
			logger.L().Info().Str("file", p).Int("bids", len(got)).Msg("file loaded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Bid
	for _, part := range perFile {
		all = append(all, part...)
	}
	return all, nil
}
