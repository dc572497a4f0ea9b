// Package sorting implements the three textbook sort algorithms compared by the
// benchmark suite: selection sort, quicksort, and merge sort.
//
// All three order a bid slice ascending by title using case-sensitive string
// comparison, mutate the slice in place, and return nothing. Callers that need
// to preserve the pre-sort order must pass a copy (see store.Snapshot).
package sorting

import "github.com/guttosm/bidbench/internal/domain/models"

// SelectionSort sorts bids ascending by title.
//
// For each position i it finds the minimum-title bid among positions >= i and
// swaps it into place. Always O(n^2) comparisons; in place; not stable.
func SelectionSort(bids []models.Bid) {
	for i := 0; i < len(bids); i++ {
		min := i
		for j := i + 1; j < len(bids); j++ {
			if bids[j].Title < bids[min].Title {
				min = j
			}
		}
		if min != i {
			bids[i], bids[min] = bids[min], bids[i]
		}
	}
}

// QuickSort sorts bids[lo..hi] ascending by title.
//
// Partition-exchange with the middle element of the range as pivot; the scan
// pointers move inward swapping out-of-order pairs until they cross, then the
// halves [lo,p] and [p+1,hi] are sorted recursively. Average O(n log n), worst
// O(n^2); in place; not stable.
//
// Call as QuickSort(bids, 0, len(bids)-1).
func QuickSort(bids []models.Bid, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(bids, lo, hi)
	QuickSort(bids, lo, p)
	QuickSort(bids, p+1, hi)
}

// partition reorders bids[lo..hi] around the middle element's title and
// returns the last index of the low side, always within [lo, hi).
func partition(bids []models.Bid, lo, hi int) int {
	left := lo
	right := hi
	pivot := bids[(lo+hi)/2].Title

	for {
		for bids[left].Title < pivot {
			left++
		}
		for bids[right].Title > pivot {
			right--
		}
		// Once the scans meet, the split is done; swapping here would step
		// the pointers past the range and the recursion would not shrink.
		if left >= right {
			return right
		}
		bids[left], bids[right] = bids[right], bids[left]
		left++
		right--
	}
}

// MergeSort sorts bids[lo..hi] ascending by title.
//
// Recursive halving down to single elements, then merging sorted halves.
// Always O(n log n) with O(n) auxiliary space per merge; stable: equal titles
// keep their left-half order because the merge takes from the left on ties.
//
// Call as MergeSort(bids, 0, len(bids)-1).
func MergeSort(bids []models.Bid, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	MergeSort(bids, lo, mid)
	MergeSort(bids, mid+1, hi)
	merge(bids, lo, mid, hi)
}

// merge combines the sorted runs bids[lo..mid] and bids[mid+1..hi].
func merge(bids []models.Bid, lo, mid, hi int) {
	left := append([]models.Bid(nil), bids[lo:mid+1]...)
	right := append([]models.Bid(nil), bids[mid+1:hi+1]...)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		// <= keeps ties in left-half order, which makes the sort stable.
		if left[i].Title <= right[j].Title {
			bids[k] = left[i]
			i++
		} else {
			bids[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		bids[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		bids[k] = right[j]
		j++
		k++
	}
}
