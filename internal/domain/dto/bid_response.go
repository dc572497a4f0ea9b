package dto

import (
	"github.com/guttosm/bidbench/internal/bench"
	"github.com/guttosm/bidbench/internal/domain/models"
)

// BidResponse represents one bid in API responses.
//
// Fields match the API contract and may differ from internal domain models.
// This keeps the API surface decoupled from business logic.
type BidResponse struct {
	BidID  string  `json:"bid_id" example:"98109"`                  // Unique bid identifier
	Title  string  `json:"title" example:"Office Chairs"`           // Bid title (the sort/search key)
	Fund   string  `json:"fund" example:"General Fund"`             // Fund the bid draws on
	Amount float64 `json:"amount" example:"125.50"`                 // Winning amount, currency symbol stripped
}

// NewBidResponse maps a domain bid onto its response shape.
func NewBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		BidID:  b.BidID,
		Title:  b.Title,
		Fund:   b.Fund,
		Amount: b.Amount,
	}
}

// NewBidListResponse maps a bid slice, preserving order.
func NewBidListResponse(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

// BenchmarkResponse represents one timed algorithm run in API responses.
type BenchmarkResponse struct {
	RunID     string `json:"run_id" example:"123e4567-e89b-12d3-a456-426614174000"` // Shared id of the run batch
	Algorithm string `json:"algorithm" example:"MergeSort"`                         // Algorithm name
	DataSize  int    `json:"data_size" example:"12023"`                             // Number of bids sorted
	TimeMs    int64  `json:"time_ms" example:"42"`                                  // Elapsed wall-clock milliseconds
}

// NewBenchmarkResponse maps a benchmark result onto its response shape.
func NewBenchmarkResponse(r bench.Result) BenchmarkResponse {
	return BenchmarkResponse{
		RunID:     r.RunID,
		Algorithm: r.Algorithm,
		DataSize:  r.DataSize,
		TimeMs:    r.TimeMs(),
	}
}

// NewBenchmarkListResponse maps a result slice, preserving order.
func NewBenchmarkListResponse(results []bench.Result) []BenchmarkResponse {
	out := make([]BenchmarkResponse, 0, len(results))
	for _, r := range results {
		out = append(out, NewBenchmarkResponse(r))
	}
	return out
}
