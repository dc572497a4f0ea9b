package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/guttosm/bidbench/internal/logger"
)

// header is written exactly once per file lifetime, decided by whether the
// file exists when the exporter opens it.
var header = []string{"Algorithm", "DataSize", "TimeMs"}

// Exporter appends benchmark results to a flat CSV file. Safe for concurrent
// use: exports are serialized so rows never interleave and the header check
// and the write are one atomic step.
type Exporter struct {
	mu   sync.Mutex
	path string
}

// NewExporter returns an exporter writing to path. The file is created on
// first export; nothing is opened up front.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Path returns the results file location.
func (e *Exporter) Path() string {
	return e.path
}

// Export appends one result row, writing the header first if the file does
// not yet exist. The file handle is opened in append mode and closed before
// returning, so a crashed run never holds it.
func (e *Exporter) Export(res Result) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, statErr := os.Stat(e.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	row := []string{
		res.Algorithm,
		strconv.Itoa(res.DataSize),
		strconv.FormatInt(res.TimeMs(), 10),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results file: %w", err)
	}

	logger.L().Debug().Str("file", e.path).Str("algorithm", res.Algorithm).Msg("benchmark exported")
	return nil
}

// ExportAll appends every result, stopping at the first write failure.
func (e *Exporter) ExportAll(results []Result) error {
	for _, res := range results {
		if err := e.Export(res); err != nil {
			return err
		}
	}
	return nil
}
