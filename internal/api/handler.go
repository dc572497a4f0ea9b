package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bidbench/internal/domain/dto"
	"github.com/guttosm/bidbench/internal/service"
	"github.com/guttosm/bidbench/internal/storage"
)

// Handler provides HTTP handlers for the bid store and the benchmark runner.
//
// Responsibilities:
//   - Validate incoming HTTP parameters
//   - Dispatch to the bid service / benchmark repository
//   - Translate results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc  service.BidService
	repo storage.BenchmarkRepository
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.BidService): The bid session the server operates on.
//   - repo (storage.BenchmarkRepository): Archive of past benchmark results.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.BidService, repo storage.BenchmarkRepository) *Handler {
	return &Handler{svc: svc, repo: repo}
}

// ListBids handles GET /api/v1/bids requests.
//
// ListBids godoc
// @Summary      List loaded bids
// @Description  Returns every bid in the store's current order
// @Tags         bids
// @Produce      json
// @Success      200  {array}   dto.BidResponse  "Success"
// @Router       /api/v1/bids [get]
func (h *Handler) ListBids(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBidListResponse(h.svc.All()))
}

// GetBid handles GET /api/v1/bids/:id requests via the id index.
//
// GetBid godoc
// @Summary      Get a bid by id
// @Description  Exact-match lookup against the bid id index
// @Tags         bids
// @Produce      json
// @Param        id   path      string  true  "Bid identifier"  example(98109)
// @Success      200  {object}  dto.BidResponse    "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/bids/{id} [get]
func (h *Handler) GetBid(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	bid, _, ok := h.svc.SearchID(id)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("bid not found", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

// SearchBids handles GET /api/v1/bids/search requests.
//
// SearchBids godoc
// @Summary      Search a bid by exact title
// @Description  Binary search over a title-sorted snapshot of the store
// @Tags         bids
// @Produce      json
// @Param        title  query     string  true  "Exact bid title"  example(Office Chairs)
// @Success      200    {object}  dto.BidResponse    "Success"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404    {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/bids/search [get]
func (h *Handler) SearchBids(c *gin.Context) {
	title := c.Query("title")
	if strings.TrimSpace(title) == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("title is required", nil))
		return
	}

	bid, _, ok := h.svc.FindByTitle(title)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("bid not found", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

// RunBenchmarks handles POST /api/v1/benchmarks/run requests.
//
// RunBenchmarks godoc
// @Summary      Run the sorting benchmark suite
// @Description  Times every sort algorithm over fresh copies of the loaded bids, exports to the results file, and archives the run
// @Tags         benchmarks
// @Produce      json
// @Success      200  {array}   dto.BenchmarkResponse  "Success"
// @Failure      409  {object}  dto.ErrorResponse      "No bids loaded"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/benchmarks/run [post]
func (h *Handler) RunBenchmarks(c *gin.Context) {
	if h.svc.Len() == 0 {
		c.JSON(http.StatusConflict, dto.NewErrorResponse("no bids loaded", nil))
		return
	}

	results, err := h.svc.RunBenchmarks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("benchmark run failed", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewBenchmarkListResponse(results))
}

// ListBenchmarks handles GET /api/v1/benchmarks requests.
//
// ListBenchmarks godoc
// @Summary      List archived benchmark results
// @Description  Returns recently archived benchmark results, newest first
// @Tags         benchmarks
// @Produce      json
// @Param        limit  query     int  false  "Max rows to return (default 50)"  example(20)
// @Success      200    {array}   dto.BenchmarkResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/benchmarks [get]
func (h *Handler) ListBenchmarks(c *gin.Context) {
	limit := 50
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be a positive integer", err))
			return
		}
		limit = v
	}

	results, err := h.repo.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list benchmarks", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewBenchmarkListResponse(results))
}
