// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and job
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/tmdb-service are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jessielw/tmdb-service/internal/platform/config"
	"github.com/jessielw/tmdb-service/internal/platform/constants"
	"github.com/jessielw/tmdb-service/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups the HTTP handler sets the job-enqueue surface exposes.
type Handlers struct {
	// Liveness is the GET / handler — always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the GET /health handler — pings Postgres and reports the
	// last successful run per job kind.
	Readiness http.HandlerFunc

	// Jobs handles job enqueueing: POST /jobs/{kind}, /movies/{id}, /series/{id}.
	Jobs *jobsHandler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers the job-enqueue routes.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	rte := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	rte.Use(middleware.RequestID())
	rte.Use(middleware.StructuredLogger(log))
	rte.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	rte.Use(middleware.PanicRecovery(log))
	rte.Use(middleware.RequireAPIKey(cfg.APIKey))
	rte.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated-by-convention health probes for container orchestration.
	// (RequireAPIKey still applies; operators typically exempt these at the
	// load balancer rather than in the router.)
	rte.Get("/", h.Liveness)
	rte.Get("/health", h.Readiness)

	// # Job Enqueue Surface
	rte.Post("/jobs/{kind}", h.Jobs.EnqueueByKind)
	rte.Post("/movies/{id}", h.Jobs.AddMovie)
	rte.Post("/series/{id}", h.Jobs.AddSeries)

	return &Server{
		router: rte,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.APIPort,
			Handler:           rte,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
