// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Tmdb-service is the entry point for the long-lived TMDB mirror process.

It ingests, reconciles, and serves a local PostgreSQL copy of a TMDB-shaped
movie/TV catalog: a scheduled full_sweep rebuild, an incremental
changes_sync, missing/prune repair passes, and a thin job-enqueue REST
surface.

Usage:

	go run cmd/tmdb-service/main.go

See internal/platform/config for the full environment variable list.

Startup Sequence:

 1. Logger: Initialize structured JSON logging (slog).
 2. Config: Load and validate environment variables.
 3. Storage: Establish the PostgreSQL connection pool.
 4. Migration: Run idempotent schema updates.
 5. Wiring: Construct the upstream client, job factory, and scheduler.
 6. Server: Bind the HTTP listener (if enabled) and handle graceful shutdown.

No business logic lives here. This file is strictly for orchestration and wiring.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessielw/tmdb-service/internal/api"
	"github.com/jessielw/tmdb-service/internal/changes"
	"github.com/jessielw/tmdb-service/internal/ingest"
	"github.com/jessielw/tmdb-service/internal/jobs"
	"github.com/jessielw/tmdb-service/internal/notify"
	"github.com/jessielw/tmdb-service/internal/platform/config"
	"github.com/jessielw/tmdb-service/internal/platform/constants"
	"github.com/jessielw/tmdb-service/internal/platform/migration"
	pgstore "github.com/jessielw/tmdb-service/internal/platform/postgres"
	"github.com/jessielw/tmdb-service/internal/ratelimit"
	"github.com/jessielw/tmdb-service/internal/reconcile"
	"github.com/jessielw/tmdb-service/internal/scheduler"
	"github.com/jessielw/tmdb-service/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application_startup_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// # 1. Logger
	// Initialize first so that subsequent startup errors are structured JSON.
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// # 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log.Info("configuration_loaded",
		slog.Int("tmdb_rate_limit", cfg.TMDBRateLimit),
		slog.Int("tmdb_max_connections", cfg.TMDBMaxConnections),
	)

	// Root context for startup. A 30s deadline prevents the app from hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// # 3. PostgreSQL
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURI, cfg.TMDBMaxConnections, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// # 4. Migrations
	if cfg.EnableUnaccent {
		if err := pgstore.EnsureUnaccentExtension(startupCtx, pool); err != nil {
			return fmt.Errorf("enable unaccent extension: %w", err)
		}
	}
	if err := migration.RunUp(cfg.DatabaseURI, cfg.MigrationPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// # 5. Upstream client
	gate := ratelimit.New(cfg.TMDBRateLimit, cfg.TMDBMaxConnections)
	client := upstream.New(cfg.TMDBReadAccessToken, gate, log)

	// # 6. Ingestion engine components
	sweeper := ingest.New(pool, client, cfg.TMDBBatchInsert, log)
	syncer := changes.New(pool, client, log)
	passes := reconcile.New(pool, client, syncer, log)
	notifier := notify.New(&http.Client{Timeout: constants.UpstreamRequestTimeout},
		cfg.WebhookEnabled, cfg.WebhookURL, cfg.WebhookBotUsr, cfg.WebhookBotPw, log)

	factory := jobs.New(pool, client, sweeper, syncer, passes, notifier, log)

	// # 7. Scheduler
	sched := scheduler.New(log)
	if err := scheduleRecurring(sched, cfg, factory, log); err != nil {
		return fmt.Errorf("schedule recurring jobs: %w", err)
	}
	sched.Start()

	// # 8. REST surface (optional)
	var server *api.Server
	if cfg.APIEnabled {
		jobKinds := []string{
			string(scheduler.KindFullSweep), string(scheduler.KindMissingIDs),
			string(scheduler.KindPruneDeleted), string(scheduler.KindChangesSync),
		}
		liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase:     func() error { return pgstore.Ping(context.Background(), pool) },
			LastSuccessfulRun: factory.LastSuccessfulRun,
			JobKinds:          jobKinds,
		}, log)

		handlers := api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			Jobs:      api.NewJobsHandler(sched, factory),
		}
		server = api.NewServer(cfg, log, handlers)
	}

	// # 9. Lifecycle Handling
	shutdownErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if server != nil {
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				shutdownErr <- fmt.Errorf("http_server_crash: %w", err)
			}
		}()
		log.Info("tmdb_service_running", slog.String("port", cfg.APIPort))
	} else {
		log.Info("tmdb_service_running", slog.String("mode", "worker-only"))
	}

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-shutdownErr:
		return err
	}

	// # 10. Graceful Shutdown Sequence
	log.Info("shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if server != nil {
		if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
			log.Error("server_shutdown_failed", slog.Any("error", err))
		}
	}
	sched.Shutdown(constants.ShutdownTimeout)

	log.Info("graceful_shutdown_complete")
	return nil
}

// scheduleRecurring registers the four recurring job kinds against their
// configured CRON expressions, skipping any field matching a disable token
// (spec.md §8 invariant 7).
func scheduleRecurring(sched *scheduler.Scheduler, cfg *config.Config, factory *jobs.Factory, log *slog.Logger) error {
	schedules := []struct {
		name string
		expr string
		make func() scheduler.Job
	}{
		{"full_sweep", cfg.CronFullSweep, factory.FullSweep},
		{"missing_ids", cfg.CronMissingOnly, factory.MissingIDs},
		{"prune_deleted", cfg.CronPrune, factory.PruneDeleted},
		{"changes_sync", cfg.CronChangesSync, factory.ChangesSync},
	}
	for _, s := range schedules {
		if config.CronDisabled(s.expr) {
			log.Info("cron schedule disabled", slog.String("job", s.name))
			continue
		}
		if err := sched.Schedule(s.expr, s.make); err != nil {
			return fmt.Errorf("schedule %s: %w", s.name, err)
		}
	}
	return nil
}
