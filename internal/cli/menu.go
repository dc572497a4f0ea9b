// Package cli implements the interactive console menu that drives the bid
// pipeline: load, display, the three sorts, the two searches, and the
// benchmark suite.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guttosm/bidbench/internal/service"
)

// Menu selections, numbered as presented to the user.
const (
	choiceLoad = iota + 1
	choiceDisplay
	choiceSelectionSort
	choiceQuickSort
	choiceMergeSort
	choiceSearchTitle
	choiceSearchID
	choiceRunBenchmarks
	choiceExit
)

// Menu is the interactive console loop. It owns no bid state itself; every
// operation goes through the bid service session.
type Menu struct {
	svc     service.BidService
	csvPath string
	in      *bufio.Scanner
	out     io.Writer
}

// NewMenu builds a menu reading selections from in and printing to out.
// csvPath is the bid file the load selection reads.
func NewMenu(svc service.BidService, csvPath string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc:     svc,
		csvPath: csvPath,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the exit selection is chosen or input ends. Every error is
// recoverable: it is reported and the loop continues with the in-memory state
// unchanged.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.printMenu()

		line, ok := m.readLine()
		if !ok {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.printf("Selection not recognized. Please try again.\n")
			continue
		}

		switch choice {
		case choiceLoad:
			m.loadBids(ctx)
		case choiceDisplay:
			m.displayBids()
		case choiceSelectionSort:
			m.sortBids("SelectionSort")
		case choiceQuickSort:
			m.sortBids("QuickSort")
		case choiceMergeSort:
			m.sortBids("MergeSort")
		case choiceSearchTitle:
			m.searchTitle()
		case choiceSearchID:
			m.searchID()
		case choiceRunBenchmarks:
			m.runBenchmarks()
		case choiceExit:
			m.printf("Good bye.\n")
			return
		default:
			m.printf("Selection not recognized. Please try again.\n")
		}
	}
}

func (m *Menu) printMenu() {
	m.printf("Menu:\n")
	m.printf("  1. Load Bids\n")
	m.printf("  2. Display All Bids\n")
	m.printf("  3. Selection Sort All Bids\n")
	m.printf("  4. Quick Sort All Bids\n")
	m.printf("  5. Merge Sort All Bids\n")
	m.printf("  6. Search Bid by Title (Binary Search)\n")
	m.printf("  7. Search Bid by ID (HashMap)\n")
	m.printf("  8. Run All Sorting Benchmarks\n")
	m.printf("  9. Exit\n")
	m.printf("Enter choice: ")
}

func (m *Menu) loadBids(ctx context.Context) {
	m.printf("Loading CSV file %s\n", m.csvPath)

	n, err := m.svc.Load(ctx, m.csvPath)
	if err != nil {
		m.printf("Load failed: %v\n", err)
	}
	m.printf("%d bids read\n", n)
}

func (m *Menu) displayBids() {
	for _, b := range m.svc.All() {
		m.printf("%s: %s | %.2f | %s\n", b.BidID, b.Title, b.Amount, b.Fund)
	}
	m.printf("\n")
}

func (m *Menu) sortBids(algorithm string) {
	res, err := m.svc.Sort(algorithm)
	if err != nil {
		m.printf("Sort failed: %v\n", err)
		return
	}
	m.printf("%d bids sorted\n", res.DataSize)
	m.printf("time: %d milliseconds\n", res.TimeMs())
}

func (m *Menu) searchTitle() {
	if m.svc.Len() == 0 {
		m.printf("Please load bids first.\n")
		return
	}

	m.printf("Enter bid title to search: ")
	title, ok := m.readLine()
	if !ok {
		return
	}

	bid, elapsed, found := m.svc.SearchTitle(strings.TrimSpace(title))
	if found {
		m.printf("Bid found:\n")
		m.printf("%s: %s | %.2f | %s\n", bid.BidID, bid.Title, bid.Amount, bid.Fund)
	} else {
		m.printf("Bid not found.\n")
	}
	m.printf("Search time: %d microseconds\n", elapsed.Microseconds())
}

func (m *Menu) searchID() {
	if m.svc.Len() == 0 {
		m.printf("Please load bids first.\n")
		return
	}

	m.printf("Enter bid ID to search: ")
	id, ok := m.readLine()
	if !ok {
		return
	}

	bid, elapsed, found := m.svc.SearchID(strings.TrimSpace(id))
	if found {
		m.printf("Bid found:\n")
		m.printf("%s: %s | %.2f | %s\n", bid.BidID, bid.Title, bid.Amount, bid.Fund)
	} else {
		m.printf("Bid not found.\n")
	}
	m.printf("Search time: %d microseconds\n", elapsed.Microseconds())
}

func (m *Menu) runBenchmarks() {
	if m.svc.Len() == 0 {
		m.printf("Please load bids first.\n")
		return
	}

	m.printf("\n=== Running All Sorting Benchmarks ===\n")
	results, err := m.svc.RunBenchmarks()
	for i, res := range results {
		m.printf("\n%d. %s...\n", i+1, res.Algorithm)
		m.printf("Time: %d ms\n", res.TimeMs())
	}
	if err != nil {
		m.printf("Benchmark export failed: %v\n", err)
		return
	}
	m.printf("\n=== Benchmark Complete ===\n")
}

// readLine returns the next input line; ok is false once input is exhausted.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
