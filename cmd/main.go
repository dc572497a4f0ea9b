package main

//
//  @title           bidbench API
//  @version         1.0
//  @description     Procurement bid loading, sorting and benchmark service.
//  @termsOfService  https://github.com/guttosm/bidbench
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/bidbench
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        bids
//  @tag.description Endpoints for listing and searching loaded bids
//
//  @tag.name        benchmarks
//  @tag.description Endpoints for running and listing sorting benchmarks
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/bidbench/config"
	_ "github.com/guttosm/bidbench/docs" // swagger docs
	"github.com/guttosm/bidbench/internal/app"
	"github.com/guttosm/bidbench/internal/bench"
	"github.com/guttosm/bidbench/internal/cli"
	"github.com/guttosm/bidbench/internal/logger"
	"github.com/guttosm/bidbench/internal/service"
	"github.com/guttosm/bidbench/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the bidbench application.
//
// Modes (selected via --mode flag):
//   - cli:   Interactive menu over the bid store (default).
//   - bench: Non-interactive: load, run all sorting benchmarks, export, exit.
//   - api:   REST API over the bid store and the benchmark archive.
//
// Flags:
//   - --mode:    Execution mode ("cli", "bench" or "api"). Default: "cli".
//   - --file:    Bid CSV file. Defaults to BID_FILE from config; a single
//     positional argument overrides it as well, for compatibility with the
//     classic invocation `bidbench <csvfile>`.
//   - --out:     Benchmark results CSV file. Defaults to BENCHMARK_FILE.
//   - --archive: In bench mode, also archive results to Postgres.
//   - --port:    Port for API mode. Defaults to SERVER_PORT from config.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "cli", "Mode: cli, bench or api")
	file := flag.String("file", config.AppConfig.Bids.InputFile, "Bid CSV file (or glob pattern) to load")
	out := flag.String("out", config.AppConfig.Bids.BenchmarkFile, "Benchmark results CSV file")
	archive := flag.Bool("archive", false, "Archive benchmark results to Postgres (bench mode)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	// Positional override: bidbench <csvfile>
	csvPath := *file
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	switch *mode {
	case "cli":
		exporter := bench.NewExporter(*out)
		svc := service.NewBidService(exporter, nil)

		menu := cli.NewMenu(svc, csvPath, os.Stdin, os.Stdout)
		menu.Run(ctx)

	case "bench":
		logger.L().Info().Str("file", csvPath).Msg("running benchmark suite")

		var archiver service.Archiver
		var cleanup func()
		if *archive {
			db, err := app.InitPostgres(config.AppConfig)
			if err != nil {
				logger.L().Fatal().Err(err).Msg("db connect error")
			}
			archiver = storage.NewBenchmarkRepository(db)
			cleanup = func() { _ = db.Close() }
		}

		exporter := bench.NewExporter(*out)
		svc := service.NewBidService(exporter, archiver)

		if n, err := svc.Load(ctx, csvPath); err != nil {
			logger.L().Error().Int("bids", n).Err(err).Msg("load incomplete, benchmarking partial data")
		}
		if svc.Len() == 0 {
			logger.L().Fatal().Str("file", csvPath).Msg("no bids loaded")
		}

		if _, err := svc.RunBenchmarks(); err != nil {
			logger.L().Fatal().Err(err).Msg("benchmark suite failed")
		}
		logger.L().Info().Str("out", *out).Msg("benchmark suite completed")

		if cleanup != nil {
			cleanup()
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx, csvPath)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
