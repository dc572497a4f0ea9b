package sorting

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/guttosm/bidbench/internal/domain/models"
)

func bidsFromTitles(titles ...string) []models.Bid {
	bids := make([]models.Bid, len(titles))
	for i, title := range titles {
		bids[i] = models.Bid{BidID: strconv.Itoa(i), Title: title}
	}
	return bids
}

func titles(bids []models.Bid) []string {
	out := make([]string, len(bids))
	for i, b := range bids {
		out[i] = b.Title
	}
	return out
}

// sortAll names each algorithm as a whole-slice sort so the shared properties
// can run against all three.
var sortAll = []struct {
	name string
	fn   func([]models.Bid)
}{
	{"selection", SelectionSort},
	{"quick", func(b []models.Bid) { QuickSort(b, 0, len(b)-1) }},
	{"merge", func(b []models.Bid) { MergeSort(b, 0, len(b)-1) }},
}

func TestSorts_OrderByTitle(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "example", in: []string{"Zeta", "Alpha", "Mu"}, want: []string{"Alpha", "Mu", "Zeta"}},
		{name: "already sorted", in: []string{"A", "B", "C"}, want: []string{"A", "B", "C"}},
		{name: "reverse", in: []string{"C", "B", "A"}, want: []string{"A", "B", "C"}},
		{name: "duplicates", in: []string{"B", "A", "B", "A"}, want: []string{"A", "A", "B", "B"}},
		{name: "all equal", in: []string{"X", "X", "X"}, want: []string{"X", "X", "X"}},
		{name: "single", in: []string{"only"}, want: []string{"only"}},
		{name: "empty", in: nil, want: nil},
		{name: "case sensitive", in: []string{"apple", "Banana"}, want: []string{"Banana", "apple"}},
	}

	for _, alg := range sortAll {
		for _, tc := range cases {
			t.Run(alg.name+"/"+tc.name, func(t *testing.T) {
				bids := bidsFromTitles(tc.in...)
				alg.fn(bids)
				got := titles(bids)
				if len(got) != len(tc.want) {
					t.Fatalf("length changed: got %d want %d", len(got), len(tc.want))
				}
				for i := range tc.want {
					if got[i] != tc.want[i] {
						t.Fatalf("order: got %v want %v", got, tc.want)
					}
				}
			})
		}
	}
}

// TestSorts_PermutationAndOrder checks the two core properties on random
// input: the output is non-decreasing by title and is a permutation of the
// input.
func TestSorts_PermutationAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, alg := range sortAll {
		t.Run(alg.name, func(t *testing.T) {
			in := make([]models.Bid, 500)
			counts := make(map[string]int)
			for i := range in {
				title := "bid-" + strconv.Itoa(rng.Intn(100))
				in[i] = models.Bid{BidID: strconv.Itoa(i), Title: title}
				counts[title]++
			}

			bids := append([]models.Bid(nil), in...)
			alg.fn(bids)

			for i := 1; i < len(bids); i++ {
				if bids[i-1].Title > bids[i].Title {
					t.Fatalf("not sorted at %d: %q > %q", i, bids[i-1].Title, bids[i].Title)
				}
			}

			got := make(map[string]int)
			for _, b := range bids {
				got[b.Title]++
			}
			if len(got) != len(counts) {
				t.Fatalf("title multiset changed: %d distinct vs %d", len(got), len(counts))
			}
			for title, n := range counts {
				if got[title] != n {
					t.Fatalf("title %q count: got %d want %d", title, got[title], n)
				}
			}
		})
	}
}

// TestMergeSort_Stable verifies equal titles keep their input order. Selection
// sort and quicksort give no such guarantee and are deliberately not tested
// for it.
func TestMergeSort_Stable(t *testing.T) {
	bids := []models.Bid{
		{BidID: "1", Title: "B"},
		{BidID: "2", Title: "A"},
		{BidID: "3", Title: "B"},
		{BidID: "4", Title: "A"},
		{BidID: "5", Title: "B"},
	}
	MergeSort(bids, 0, len(bids)-1)

	wantIDs := []string{"2", "4", "1", "3", "5"}
	for i, want := range wantIDs {
		if bids[i].BidID != want {
			t.Fatalf("stability violated at %d: got id %s want %s (%v)", i, bids[i].BidID, want, bids)
		}
	}
}

// TestQuickSort_SortedInputTerminates covers the partition edge where the
// middle pivot is the unique minimum of the range: the scan pointers meet
// immediately, and a swap there would walk past the range and recurse on the
// full range forever. Sorted inputs reach that shape at every size.
func TestQuickSort_SortedInputTerminates(t *testing.T) {
	for size := 2; size <= 16; size++ {
		bids := make([]models.Bid, size)
		for i := range bids {
			bids[i] = models.Bid{BidID: strconv.Itoa(i), Title: "t" + string(rune('a'+i))}
		}

		QuickSort(bids, 0, len(bids)-1)

		for i := 1; i < len(bids); i++ {
			if bids[i-1].Title > bids[i].Title {
				t.Fatalf("size %d: not sorted at %d: %q > %q", size, i, bids[i-1].Title, bids[i].Title)
			}
		}
	}
}

func TestPartition_ResultWithinRange(t *testing.T) {
	cases := []struct {
		name string
		in   []string
	}{
		{name: "sorted pair", in: []string{"A", "B"}},
		{name: "reverse pair", in: []string{"B", "A"}},
		{name: "equal pair", in: []string{"X", "X"}},
		{name: "pivot is minimum", in: []string{"B", "A", "C"}},
		{name: "pivot is maximum", in: []string{"A", "C", "B"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bids := bidsFromTitles(tc.in...)
			p := partition(bids, 0, len(bids)-1)
			// Both recursive halves [lo,p] and [p+1,hi] must be strictly
			// smaller than the whole range.
			if p < 0 || p >= len(bids)-1 {
				t.Fatalf("partition returned %d for range [0,%d]", p, len(bids)-1)
			}
		})
	}
}

func TestQuickSort_ManyEqualKeys(t *testing.T) {
	// Worst-case-ish input for the middle-pivot scheme; must still terminate
	// and sort.
	bids := make([]models.Bid, 64)
	for i := range bids {
		bids[i] = models.Bid{BidID: strconv.Itoa(i), Title: "same"}
	}
	bids[10].Title = "aaa"
	bids[40].Title = "zzz"

	QuickSort(bids, 0, len(bids)-1)

	if bids[0].Title != "aaa" || bids[len(bids)-1].Title != "zzz" {
		t.Fatalf("extremes misplaced: first %q last %q", bids[0].Title, bids[len(bids)-1].Title)
	}
}
