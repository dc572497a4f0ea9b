package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guttosm/bidbench/internal/bench"
	"github.com/guttosm/bidbench/internal/service"
)

const menuCSV = "Title,Bid Id,Department,Close Date,Winning Bid,CC Rate,CC Fee,Inventory ID,Fund\n" +
	"Zeta,B1,,,$30.00,,,,FundA\n" +
	"Alpha,B2,,,$10.00,,,,FundB\n" +
	"Mu,B3,,,$20.00,,,,FundC\n"

// newTestMenu builds a menu over a real service, a throwaway bid file, and a
// throwaway benchmark results file. script is the console input, one
// selection per line.
func newTestMenu(t *testing.T, script string) (*Menu, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bids.csv")
	if err := os.WriteFile(csvPath, []byte(menuCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	svc := service.NewBidService(bench.NewExporter(filepath.Join(dir, "benchmark_results.csv")), nil)
	out := &bytes.Buffer{}
	return NewMenu(svc, csvPath, strings.NewReader(script), out), out
}

func TestMenu_FullSession(t *testing.T) {
	m, out := newTestMenu(t, "1\n2\n5\n2\n6\nAlpha\n7\nB3\n8\n9\n")
	m.Run(context.Background())
	got := out.String()

	for _, want := range []string{
		"3 bids read",
		"bids sorted",
		"Bid found:",
		"B2: Alpha | 10.00 | FundB",
		"B3: Mu | 20.00 | FundC",
		"=== Benchmark Complete ===",
		"Good bye.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, got)
		}
	}

	// After the merge sort, the display listing is in title order.
	alpha := strings.Index(got, "B2: Alpha")
	mu := strings.Index(got, "B3: Mu")
	zeta := strings.Index(got, "B1: Zeta")
	if !(alpha < mu && mu < zeta) {
		t.Errorf("sorted display out of order: alpha=%d mu=%d zeta=%d", alpha, mu, zeta)
	}
}

func TestMenu_SearchTitleNotFound(t *testing.T) {
	m, out := newTestMenu(t, "1\n5\n6\nOmega\n9\n")
	m.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "Bid not found.") {
		t.Fatalf("expected not-found message, got:\n%s", got)
	}
	if !strings.Contains(got, "Search time:") {
		t.Fatalf("expected search timing, got:\n%s", got)
	}
}

func TestMenu_SearchInputTrimmed(t *testing.T) {
	m, out := newTestMenu(t, "1\n5\n6\n  Alpha  \n7\n B2 \n9\n")
	m.Run(context.Background())

	got := out.String()
	if n := strings.Count(got, "Bid found:"); n != 2 {
		t.Fatalf("want both padded searches to hit, got %d\noutput:\n%s", n, got)
	}
}

func TestMenu_SearchBeforeLoad(t *testing.T) {
	m, out := newTestMenu(t, "6\n7\n8\n9\n")
	m.Run(context.Background())

	got := out.String()
	if n := strings.Count(got, "Please load bids first."); n != 3 {
		t.Fatalf("want 3 load-first guards, got %d\noutput:\n%s", n, got)
	}
}

func TestMenu_UnrecognizedSelection(t *testing.T) {
	m, out := newTestMenu(t, "42\nabc\n9\n")
	m.Run(context.Background())

	got := out.String()
	if n := strings.Count(got, "Selection not recognized. Please try again."); n != 2 {
		t.Fatalf("want 2 rejections, got %d\noutput:\n%s", n, got)
	}
	if !strings.Contains(got, "Good bye.") {
		t.Fatal("expected the loop to continue to exit")
	}
}

func TestMenu_LoadFailureRecoverable(t *testing.T) {
	m, out := newTestMenu(t, "1\n9\n")
	m.csvPath = filepath.Join(t.TempDir(), "missing.csv")
	m.Run(context.Background())

	got := out.String()
	if !strings.Contains(got, "Load failed:") {
		t.Fatalf("expected load failure message, got:\n%s", got)
	}
	if !strings.Contains(got, "0 bids read") {
		t.Fatalf("expected zero bids read, got:\n%s", got)
	}
	if !strings.Contains(got, "Good bye.") {
		t.Fatal("expected the loop to survive the failure")
	}
}

func TestMenu_EndOfInput(t *testing.T) {
	m, out := newTestMenu(t, "1\n")
	m.Run(context.Background())

	if strings.Contains(out.String(), "Good bye.") {
		t.Fatal("exhausted input should end the loop without the exit message")
	}
}
