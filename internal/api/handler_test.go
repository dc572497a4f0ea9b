package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bidbench/internal/bench"
	"github.com/guttosm/bidbench/internal/domain/models"
)

type fakeBidService struct {
	bids    []models.Bid
	results []bench.Result
	runErr  error
}

func (f *fakeBidService) Load(ctx context.Context, path string) (int, error) { return len(f.bids), nil }
func (f *fakeBidService) All() []models.Bid                                  { return f.bids }
func (f *fakeBidService) Len() int                                           { return len(f.bids) }
func (f *fakeBidService) Sort(algorithm string) (bench.Result, error)        { return bench.Result{}, nil }

func (f *fakeBidService) SearchTitle(title string) (models.Bid, time.Duration, bool) {
	return f.FindByTitle(title)
}

func (f *fakeBidService) FindByTitle(title string) (models.Bid, time.Duration, bool) {
	for _, b := range f.bids {
		if b.Title == title {
			return b, time.Microsecond, true
		}
	}
	return models.Bid{}, time.Microsecond, false
}

func (f *fakeBidService) SearchID(id string) (models.Bid, time.Duration, bool) {
	for _, b := range f.bids {
		if b.BidID == id {
			return b, time.Microsecond, true
		}
	}
	return models.Bid{}, time.Microsecond, false
}

func (f *fakeBidService) RunBenchmarks() ([]bench.Result, error) {
	return f.results, f.runErr
}

type fakeBenchRepo struct {
	results []bench.Result
	err     error
}

func (f *fakeBenchRepo) InsertResultsBatch([]bench.Result) error { return f.err }
func (f *fakeBenchRepo) HasRun(string) (bool, error)             { return false, nil }

func (f *fakeBenchRepo) ListRecent(limit int) ([]bench.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.results) {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func newTestRouter(svc *fakeBidService, repo *fakeBenchRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, repo)
	v1 := r.Group("/api/v1")
	v1.GET("/bids", h.ListBids)
	v1.GET("/bids/search", h.SearchBids)
	v1.GET("/bids/:id", h.GetBid)
	v1.POST("/benchmarks/run", h.RunBenchmarks)
	v1.GET("/benchmarks", h.ListBenchmarks)
	return r
}

func doRequest(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

var testBids = []models.Bid{
	{BidID: "B1", Title: "Widget", Fund: "FundA", Amount: 125.50},
	{BidID: "B2", Title: "Anvil", Fund: "FundB", Amount: 9.99},
}

func TestListBids(t *testing.T) {
	r := newTestRouter(&fakeBidService{bids: testBids}, &fakeBenchRepo{})

	w := doRequest(r, http.MethodGet, "/api/v1/bids")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 bids, got %d", len(got))
	}
	if got[0]["bid_id"] != "B1" || got[0]["title"] != "Widget" {
		t.Fatalf("first bid: %+v", got[0])
	}
}

func TestGetBid(t *testing.T) {
	r := newTestRouter(&fakeBidService{bids: testBids}, &fakeBenchRepo{})

	cases := []struct {
		name   string
		target string
		status int
	}{
		{name: "found", target: "/api/v1/bids/B2", status: http.StatusOK},
		{name: "not found", target: "/api/v1/bids/nope", status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tc.target)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
		})
	}
}

func TestSearchBids(t *testing.T) {
	r := newTestRouter(&fakeBidService{bids: testBids}, &fakeBenchRepo{})

	cases := []struct {
		name   string
		target string
		status int
	}{
		{name: "found", target: "/api/v1/bids/search?title=Anvil", status: http.StatusOK},
		{name: "absent", target: "/api/v1/bids/search?title=Omega", status: http.StatusNotFound},
		{name: "missing param", target: "/api/v1/bids/search", status: http.StatusBadRequest},
		{name: "blank param", target: "/api/v1/bids/search?title=%20%20", status: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tc.target)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
		})
	}
}

func TestRunBenchmarks(t *testing.T) {
	results := []bench.Result{
		{RunID: "r", Algorithm: "SelectionSort", DataSize: 2, Elapsed: time.Millisecond},
		{RunID: "r", Algorithm: "QuickSort", DataSize: 2, Elapsed: time.Millisecond},
		{RunID: "r", Algorithm: "MergeSort", DataSize: 2, Elapsed: time.Millisecond},
	}

	cases := []struct {
		name   string
		svc    *fakeBidService
		status int
	}{
		{name: "ok", svc: &fakeBidService{bids: testBids, results: results}, status: http.StatusOK},
		{name: "no bids loaded", svc: &fakeBidService{}, status: http.StatusConflict},
		{name: "run failure", svc: &fakeBidService{bids: testBids, runErr: errors.New("boom")}, status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(tc.svc, &fakeBenchRepo{})
			w := doRequest(r, http.MethodPost, "/api/v1/benchmarks/run")
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusOK {
				var got []map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(got) != 3 {
					t.Fatalf("want 3 results, got %d", len(got))
				}
			}
		})
	}
}

func TestListBenchmarks(t *testing.T) {
	repo := &fakeBenchRepo{results: []bench.Result{
		{RunID: "r", Algorithm: "MergeSort", DataSize: 10, Elapsed: 2 * time.Millisecond},
	}}

	cases := []struct {
		name   string
		target string
		repo   *fakeBenchRepo
		status int
	}{
		{name: "default limit", target: "/api/v1/benchmarks", repo: repo, status: http.StatusOK},
		{name: "explicit limit", target: "/api/v1/benchmarks?limit=1", repo: repo, status: http.StatusOK},
		{name: "bad limit", target: "/api/v1/benchmarks?limit=abc", repo: repo, status: http.StatusBadRequest},
		{name: "zero limit", target: "/api/v1/benchmarks?limit=0", repo: repo, status: http.StatusBadRequest},
		{name: "repo failure", target: "/api/v1/benchmarks", repo: &fakeBenchRepo{err: errors.New("db down")}, status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeBidService{}, tc.repo)
			w := doRequest(r, http.MethodGet, tc.target)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
		})
	}
}
