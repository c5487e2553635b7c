// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package scheduler owns the job queue, single-flight guarantees, and CRON
wiring for every recurring and ad-hoc job the mirror runs: full_sweep,
missing_ids, prune_deleted, changes_sync, create_tables, add_movie(id),
add_series(id), and test_webhook(message).

A job is single-flight keyed by its kind for family-wide jobs, or by
kind+id for per-record jobs (§4.8, §8 invariant 5): a second request for a
key already running is rejected rather than queued.
*/
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jessielw/tmdb-service/internal/platform/apperr"
	"github.com/jessielw/tmdb-service/internal/platform/ctxutil"
)

// Kind enumerates the job kinds the scheduler dispatches.
type Kind string

const (
	KindFullSweep    Kind = "full_sweep"
	KindMissingIDs   Kind = "missing_ids"
	KindPruneDeleted Kind = "prune_deleted"
	KindChangesSync  Kind = "changes_sync"
	KindCreateTables Kind = "create_tables"
	KindAddMovie     Kind = "add_movie"
	KindAddSeries    Kind = "add_series"
	KindTestWebhook  Kind = "test_webhook"
)

// Job is one unit of work the scheduler can run under single-flight
// protection. Run receives a context carrying the job id via ctxutil.
type Job struct {
	Kind Kind
	// ID distinguishes per-record jobs (add_movie/add_series) from
	// family-wide jobs; empty for the latter.
	ID   string
	Run  func(ctx context.Context) error
}

// key returns the single-flight key for a job: kind alone for family-wide
// jobs, kind+id for per-record jobs.
func (j Job) key() string {
	if j.ID == "" {
		return string(j.Kind)
	}
	return fmt.Sprintf("%s:%s", j.Kind, j.ID)
}

// Scheduler runs jobs with single-flight semantics and drives the four
// recurring CRON schedules.
type Scheduler struct {
	log *slog.Logger

	mu      sync.Mutex
	running map[string]struct{}

	cron *cron.Cron

	wg sync.WaitGroup

	rootCtx context.Context
	cancel  context.CancelFunc
}

// New constructs a Scheduler. The returned cron.Cron is not started; call
// Start once all schedules are registered.
func New(log *slog.Logger) *Scheduler {
	rootCtx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		log:     log,
		running: make(map[string]struct{}),
		cron:    cron.New(),
		rootCtx: rootCtx,
		cancel:  cancel,
	}
}

// ErrAlreadyRunning is returned by Enqueue when a job with the same
// single-flight key is already in flight.
var ErrAlreadyRunning = apperr.Conflict("job already running")

// Enqueue starts job in a background goroutine, failing fast with
// ErrAlreadyRunning if its single-flight key is already in flight. It
// returns as soon as the job is accepted, not when it completes.
func (s *Scheduler) Enqueue(ctx context.Context, job Job) error {
	key := job.key()

	s.mu.Lock()
	if _, busy := s.running[key]; busy {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running[key] = struct{}{}
	s.mu.Unlock()

	// Detach from the enqueuing request's context (an HTTP request returning
	// must not kill the job) but stay cancelable from s.rootCtx, so Shutdown
	// can actually cancel in-flight jobs on SIGTERM rather than only waiting
	// out the grace period.
	jobCtx := ctxutil.WithJobID(s.rootCtx, key)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.running, key)
			s.mu.Unlock()
		}()

		start := time.Now()
		s.log.InfoContext(jobCtx, "job started", "kind", job.Kind, "id", job.ID)
		if err := job.Run(jobCtx); err != nil {
			s.log.ErrorContext(jobCtx, "job failed", "kind", job.Kind, "id", job.ID, "error", err, "elapsed", time.Since(start))
			return
		}
		s.log.InfoContext(jobCtx, "job completed", "kind", job.Kind, "id", job.ID, "elapsed", time.Since(start))
	}()
	return nil
}

// IsRunning reports whether a job with the given key is currently in
// flight; scheduler_test uses it to observe the single-flight registry.
func (s *Scheduler) IsRunning(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[key]
	return ok
}

// Schedule registers a recurring job under a CRON expression. A disabled
// expression (config.CronDisabled) should be filtered out by the caller
// before calling Schedule; this method assumes expr is a valid 5-field
// expression.
func (s *Scheduler) Schedule(expr string, makeJob func() Job) error {
	_, err := s.cron.AddFunc(expr, func() {
		if err := s.Enqueue(context.Background(), makeJob()); err != nil {
			s.log.Warn("scheduled job rejected", "error", err)
		}
	})
	return err
}

// Start begins the CRON loop. Call after all Schedule calls.
func (s *Scheduler) Start() { s.cron.Start() }

// Shutdown stops new CRON triggers and waits up to grace for in-flight jobs
// to finish (§5: "30s grace period" on SIGTERM).
func (s *Scheduler) Shutdown(grace time.Duration) {
	cronCtx := s.cron.Stop()
	<-cronCtx.Done()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(grace):
		s.log.Warn("scheduler shutdown grace period elapsed, cancelling in-flight jobs")
		s.cancel()
		select {
		case <-done:
		case <-time.After(grace):
			s.log.Warn("scheduler shutdown jobs still running after cancellation, aborting")
		}
	}
}
