// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api implements the HTTP surface for the TMDB mirror service: job
enqueueing plus the observability endpoints below.

It provides standard Kubernetes-style probes (liveness, readiness) to monitor the
operational health of the application and its critical dependencies.

Architecture:

  - Liveness: Returns 200 OK as long as the process is running.
  - Readiness: Performs a shallow ping of Postgres and reports the age of the
    last successful run of each scheduled job kind.

These handlers ensure that traffic is only routed to instances that are
fully connected to the data plane and whose ingestion jobs are actually
completing.
*/
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jessielw/tmdb-service/internal/platform/constants"
	"github.com/jessielw/tmdb-service/internal/platform/respond"
)

// # Data Structures

// HealthDependencies holds the injectable dependency checkers for system probes.
type HealthDependencies struct {
	// CheckDatabase performs a shallow ping of the PostgreSQL pool.
	CheckDatabase func() error

	// LastSuccessfulRun reports the last time the named job kind completed
	// without error, and whether it has ever run.
	LastSuccessfulRun func(kind string) (time.Time, bool)

	// JobKinds lists the scheduled job kinds to report in readiness checks.
	JobKinds []string
}

// healthHandler orchestrates the execution of connectivity checks.
type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// # Constructors

// NewHealthHandlers constructs the liveness and readiness [http.HandlerFunc] pair.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{
		dependencies: deps,
		logger:       logger,
	}
	return handler.liveness, handler.readiness
}

// # Handlers

// liveness handles GET /.
// It confirms that the HTTP server is alive and accepting connections.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /health.
// It verifies that Postgres is reachable and surfaces the last successful
// run timestamp for every scheduled job kind.
func (handler *healthHandler) readiness(writer http.ResponseWriter, _ *http.Request) {

	type jobStatus struct {
		Kind       string     `json:"kind"`
		LastRun    *time.Time `json:"last_successful_run,omitempty"`
		HasRunOnce bool       `json:"has_run_once"`
	}

	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, 1)
	isSystemReady := true

	if handler.dependencies.CheckDatabase != nil {
		result := checkResult{Name: "postgres", IsOK: true}
		if err := handler.dependencies.CheckDatabase(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", "postgres"),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	jobs := make([]jobStatus, 0, len(handler.dependencies.JobKinds))
	if handler.dependencies.LastSuccessfulRun != nil {
		for _, kind := range handler.dependencies.JobKinds {
			status := jobStatus{Kind: kind}
			if ts, ok := handler.dependencies.LastSuccessfulRun(kind); ok {
				status.HasRunOnce = true
				status.LastRun = &ts
			}
			jobs = append(jobs, status)
		}
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK

	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable

		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(httpStatus)
	}

	respond.OK(writer, map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
		"jobs":                jobs,
	})
}
