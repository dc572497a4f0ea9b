// Package store holds the in-memory bid collection shared by the menu, the
// API, and the benchmark runner: an ordered slice plus an id index for O(1)
// exact-match lookup.
package store

import "github.com/guttosm/bidbench/internal/domain/models"

// BidStore is the session state that the original program kept in globals:
// the ordered bid sequence and its id index. It is not safe for concurrent
// mutation; the CLI is single-threaded and the API only reloads at startup.
type BidStore struct {
	bids []models.Bid
	byID map[string]models.Bid
}

// New returns an empty store.
func New() *BidStore {
	return &BidStore{byID: make(map[string]models.Bid)}
}

// Reload replaces the sequence wholesale and rebuilds the id index.
//
// This is the only operation that touches the index: sorting reorders the
// sequence but never which bids exist, so id lookup stays valid across sorts
// without a rebuild.
func (s *BidStore) Reload(bids []models.Bid) {
	s.bids = bids
	s.byID = make(map[string]models.Bid, len(bids))
	for _, b := range bids {
		s.byID[b.BidID] = b
	}
}

// Adopt replaces the ordered sequence without rebuilding the index. Used after
// a sort of a snapshot to keep the sorted order for later searches.
func (s *BidStore) Adopt(bids []models.Bid) {
	s.bids = bids
}

// Bids returns the live ordered sequence. Callers must not mutate it unless
// they own the store (the CLI does; HTTP handlers must use Snapshot).
func (s *BidStore) Bids() []models.Bid {
	return s.bids
}

// Snapshot returns a copy of the ordered sequence, preserving the store's
// order for operations that sort in place.
func (s *BidStore) Snapshot() []models.Bid {
	return append([]models.Bid(nil), s.bids...)
}

// ByID returns the bid with the given identifier. The boolean reports whether
// it was present. Expected O(1); independent of sort order.
func (s *BidStore) ByID(id string) (models.Bid, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// Len returns the number of bids currently loaded.
func (s *BidStore) Len() int {
	return len(s.bids)
}
