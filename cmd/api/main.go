// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Diwan HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and run migrations, when DATABASE_URL is set.
//  4. Connect to Redis, when REDIS_URL is set.
//  5. Load embedded poetry data and wire domain services.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/taibuivan/diwan/internal/analysis"
	"github.com/taibuivan/diwan/internal/api"
	"github.com/taibuivan/diwan/internal/generate"
	"github.com/taibuivan/diwan/internal/learning"
	"github.com/taibuivan/diwan/internal/platform/config"
	"github.com/taibuivan/diwan/internal/platform/constants"
	"github.com/taibuivan/diwan/internal/platform/metrics"
	"github.com/taibuivan/diwan/internal/platform/migration"
	pgstore "github.com/taibuivan/diwan/internal/platform/postgres"
	redisstore "github.com/taibuivan/diwan/internal/platform/redis"
	"github.com/taibuivan/diwan/internal/poetry"
	"github.com/taibuivan/diwan/internal/reference"
	"github.com/taibuivan/diwan/internal/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("postgres", cfg.HasDatabase()),
		slog.Bool("redis", cfg.HasRedis()),
		slog.Bool("generation", cfg.HasLLM()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. PostgreSQL (curated library) ───────────────────────────────────
	var library poetry.CuratedRepository
	if cfg.HasDatabase() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		library = poetry.NewPostgresRepository(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	} else {
		memory, err := poetry.NewMemoryRepository()
		must(log, err, "load embedded library")
		library = memory
	}

	// ── 4. Redis (reader sessions) ────────────────────────────────────────
	var sessions session.Store = session.NewMemoryStore(cfg.SessionTTL)
	if cfg.HasRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Metrics ────────────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(registry)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	registryOfPoets, err := poetry.NewRegistry()
	must(log, err, "load poet registry")

	synth, err := poetry.NewSynthesizer()
	must(log, err, "load poem templates")

	fetcher := poetry.NewFetcher(poetry.FetcherConfig{
		Endpoints: poetry.DefaultEndpoints(cfg.PoetryBaseURLs),
		Timeout:   cfg.PoetryFetchTimeout,
		Budget:    cfg.PoetryFetchBudget,
		UserAgent: cfg.PoetryUserAgent,
	}, &http.Client{}, log, recorder)

	poetryService := poetry.NewService(fetcher, registryOfPoets, synth, library, recorder, log)
	sessionService := session.NewService(sessions, poetryService)

	var completer generate.Completer
	if cfg.HasLLM() {
		completer = generate.NewClient(generate.ClientConfig{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout,
		})
	}

	lessons, err := learning.NewCatalog()
	must(log, err, "load lessons")

	references, err := reference.NewCatalog(synth.Meters())
	must(log, err, "load reference data")

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Poetry:    poetry.NewHandler(poetryService),
		Session:   session.NewHandler(sessionService),
		Generate:  generate.NewHandler(generate.NewService(completer, recorder)),
		Learning:  learning.NewHandler(learning.NewService(lessons, sessionService)),
		Reference: reference.NewHandler(references),
		Analysis:  analysis.NewHandler(analysis.NewAnalyzer()),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, recorder, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
