// Package search implements the two lookup strategies compared by the
// benchmark suite: binary search by title and exact-match lookup by bid id.
package search

import "github.com/guttosm/bidbench/internal/domain/models"

// NotFound is the sentinel index returned when no bid matches.
const NotFound = -1

// ByTitle performs a binary search for an exact title match and returns the
// matching index, or NotFound.
//
// Precondition: bids must already be sorted ascending by title (any of the
// sorting package's algorithms). The precondition is NOT checked; on unsorted
// input the result is unspecified (any matching or non-matching index, or
// NotFound for a present title), but the search never panics and always
// terminates.
func ByTitle(bids []models.Bid, title string) int {
	left := 0
	right := len(bids) - 1

	for left <= right {
		mid := left + (right-left)/2
		if bids[mid].Title == title {
			return mid
		}
		if bids[mid].Title < title {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return NotFound
}
