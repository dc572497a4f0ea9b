package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bidbench/config"
	"github.com/guttosm/bidbench/internal/api"
	"github.com/guttosm/bidbench/internal/bench"
	"github.com/guttosm/bidbench/internal/logger"
	"github.com/guttosm/bidbench/internal/service"
	"github.com/guttosm/bidbench/internal/storage"
)

// InitializeApp sets up all application dependencies for API mode and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres() (benchmark archive).
//   - Builds the bid service around the benchmark exporter and the archive.
//   - Loads the configured bid file into the in-memory store.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// A load failure is not fatal: the server starts with whatever bids were
// readable, consistent with the loader's partial-result contract.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(ctx context.Context, bidFile string) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Connect to PostgreSQL (indirection for unit testing)
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Benchmark archive + CSV exporter
	repo := storage.NewBenchmarkRepository(db)
	exporter := bench.NewExporter(cfg.Bids.BenchmarkFile)

	// Bid session (store + sorts + searches + benchmarks)
	svc := service.NewBidService(exporter, repo)

	if bidFile == "" {
		bidFile = cfg.Bids.InputFile
	}
	if n, err := svc.Load(ctx, bidFile); err != nil {
		logger.L().Warn().Str("file", bidFile).Int("bids", n).Err(err).Msg("serving partially loaded bids")
	}

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, repo)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
