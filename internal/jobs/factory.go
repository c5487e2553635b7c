// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package jobs assembles the concrete scheduler.Job closures for every job
kind the mirror supports, wiring together ingest, changes, reconcile,
notify, and the job_runs audit log. This is the composition point
cmd/tmdb-service and internal/api share so the HTTP layer never imports the
ingestion internals directly.
*/
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jessielw/tmdb-service/internal/changes"
	"github.com/jessielw/tmdb-service/internal/ingest"
	"github.com/jessielw/tmdb-service/internal/notify"
	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
	"github.com/jessielw/tmdb-service/internal/platform/dberr"
	"github.com/jessielw/tmdb-service/internal/reconcile"
	"github.com/jessielw/tmdb-service/internal/scheduler"
	"github.com/jessielw/tmdb-service/internal/upstream"
)

// Factory builds the scheduler.Job values the API and CLI surfaces enqueue.
// It satisfies internal/api's JobFactory interface.
type Factory struct {
	pool     *pgxpool.Pool
	client   *upstream.Client
	sweeper  *ingest.Sweeper
	syncer   *changes.Reconciler
	passes   *reconcile.Passes
	notifier *notify.Notifier
	log      *slog.Logger
}

func New(pool *pgxpool.Pool, client *upstream.Client, sweeper *ingest.Sweeper, syncer *changes.Reconciler, passes *reconcile.Passes, notifier *notify.Notifier, log *slog.Logger) *Factory {
	return &Factory{pool: pool, client: client, sweeper: sweeper, syncer: syncer, passes: passes, notifier: notifier, log: log}
}

// runFamilies runs fn for every family in upstream.Families, aggregating the
// first error encountered while still attempting every family.
func (f *Factory) runFamilies(ctx context.Context, fn func(ctx context.Context, family string) error) error {
	var firstErr error
	for _, family := range upstream.Families {
		if err := fn(ctx, family); err != nil {
			f.log.ErrorContext(ctx, "job family failed", "family", family, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (f *Factory) FullSweep() scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindFullSweep,
		Run: func(ctx context.Context) error {
			start := time.Now()
			var totalRes ingest.Result
			err := f.runFamilies(ctx, func(ctx context.Context, family string) error {
				res, err := f.sweeper.Run(ctx, family)
				totalRes.Enumerated += res.Enumerated
				totalRes.Fetched += res.Fetched
				totalRes.Errored += res.Errored
				if err == nil {
					if advErr := f.advanceFullSweep(ctx, family, time.Now()); advErr != nil {
						return advErr
					}
				}
				return err
			})
			f.report(ctx, "full_sweep", "", start, err, notify.Report{
				Enumerated: totalRes.Enumerated, Fetched: totalRes.Fetched, Errored: totalRes.Errored,
			})
			return err
		},
	}
}

func (f *Factory) MissingIDs() scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindMissingIDs,
		Run: func(ctx context.Context) error {
			start := time.Now()
			var totalRes reconcile.Result
			err := f.runFamilies(ctx, func(ctx context.Context, family string) error {
				res, err := f.passes.MissingIDs(ctx, family)
				totalRes.Considered += res.Considered
				totalRes.Changed += res.Changed
				totalRes.Errored += res.Errored
				return err
			})
			f.report(ctx, "missing_ids", "", start, err, notify.Report{
				Enumerated: totalRes.Considered, Inserted: totalRes.Changed, Errored: totalRes.Errored,
			})
			return err
		},
	}
}

func (f *Factory) PruneDeleted() scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindPruneDeleted,
		Run: func(ctx context.Context) error {
			start := time.Now()
			var totalRes reconcile.Result
			err := f.runFamilies(ctx, func(ctx context.Context, family string) error {
				res, err := f.passes.PruneDeleted(ctx, family)
				totalRes.Considered += res.Considered
				totalRes.Changed += res.Changed
				return err
			})
			f.report(ctx, "prune_deleted", "", start, err, notify.Report{
				Enumerated: totalRes.Considered, Deleted: totalRes.Changed,
			})
			return err
		},
	}
}

func (f *Factory) ChangesSync() scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindChangesSync,
		Run: func(ctx context.Context) error {
			start := time.Now()
			now := time.Now()
			var totalRes changes.Result
			err := f.runFamilies(ctx, func(ctx context.Context, family string) error {
				res, err := f.syncer.Run(ctx, family, now)
				totalRes.Enumerated += res.Enumerated
				totalRes.Upserted += res.Upserted
				totalRes.Deleted += res.Deleted
				totalRes.Errored += res.Errored
				return err
			})
			f.report(ctx, "changes_sync", "", start, err, notify.Report{
				Enumerated: totalRes.Enumerated, Updated: totalRes.Upserted, Deleted: totalRes.Deleted, Errored: totalRes.Errored,
			})
			return err
		},
	}
}

func (f *Factory) CreateTables() scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindCreateTables,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := f.createTables(ctx)
			f.report(ctx, "create_tables", "", start, err, notify.Report{})
			return err
		},
	}
}

func (f *Factory) AddMovie(id string) scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindAddMovie,
		ID:   id,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := f.addOne(ctx, "movie", id)
			f.report(ctx, "add_movie", id, start, err, notify.Report{})
			return err
		},
	}
}

func (f *Factory) AddSeries(id string) scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindAddSeries,
		ID:   id,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := f.addOne(ctx, "series", id)
			f.report(ctx, "add_series", id, start, err, notify.Report{})
			return err
		},
	}
}

func (f *Factory) TestWebhook(message string) scheduler.Job {
	return scheduler.Job{
		Kind: scheduler.KindTestWebhook,
		Run: func(ctx context.Context) error {
			f.notifier.Send(ctx, notify.Report{
				Kind:       "test_webhook",
				StartedAt:  time.Now(),
				FinishedAt: time.Now(),
				Succeeded:  true,
				Error:      message,
			})
			return nil
		},
	}
}

func (f *Factory) addOne(ctx context.Context, family, id string) error {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("jobs: invalid id %q: %w", id, err)
	}
	record, err := f.client.FetchRecord(ctx, family, numericID)
	if err != nil {
		return fmt.Errorf("jobs: fetch %s %d: %w", family, numericID, err)
	}
	return f.syncer.UpsertRecord(ctx, family, record)
}

func (f *Factory) advanceFullSweep(ctx context.Context, family string, now time.Time) error {
	_, err := f.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (family, last_successful_changes_sync, last_successful_full_sweep)
		 VALUES ($1, NULL, $2)
		 ON CONFLICT (family) DO UPDATE SET last_successful_full_sweep = EXCLUDED.last_successful_full_sweep`,
		schema.SyncState.QualifiedName(),
	), family, now)
	if err != nil {
		return dberr.Wrap(err, "jobs_advance_full_sweep")
	}
	return nil
}

// createTables creates the sync_state and job_runs bookkeeping tables plus
// every staging/live table pair the migrations did not already create,
// exposed as a job so an operator can repair a partially migrated database
// without re-running golang-migrate by hand.
func (f *Factory) createTables(ctx context.Context) error {
	all := append(append([]schema.Table{}, schema.MovieTables...), schema.SeriesTables...)
	all = append(all, schema.SyncState, schema.JobRuns)
	for _, t := range all {
		if err := createIfMissing(ctx, f.pool, t); err != nil {
			return err
		}
		if t.Name != schema.SyncState.Name && t.Name != schema.JobRuns.Name {
			if err := createIfMissing(ctx, f.pool, schema.Staging(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// createIfMissing issues a best-effort CREATE TABLE IF NOT EXISTS with every
// column typed TEXT; real column types live in the golang-migrate SQL files
// under migrations/, which is the path used in production. This job exists
// for local/dev bootstrapping and CI fixtures.
func createIfMissing(ctx context.Context, pool *pgxpool.Pool, t schema.Table) error {
	cols := ""
	for i, c := range t.Columns {
		if i > 0 {
			cols += ", "
		}
		cols += c + " TEXT"
	}
	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.QualifiedName(), cols)
	if _, err := pool.Exec(ctx, sql); err != nil {
		return dberr.Wrap(fmt.Errorf("jobs: create table %s: %w", t.Name, err), "jobs_create_table")
	}
	return nil
}

func (f *Factory) report(ctx context.Context, kind, id string, start time.Time, err error, partial notify.Report) {
	report := partial
	report.Kind = kind
	report.ID = id
	report.StartedAt = start
	report.FinishedAt = time.Now()
	report.Succeeded = err == nil
	if err != nil {
		report.Error = err.Error()
	}
	f.notifier.Send(ctx, report)

	if logErr := f.logJobRun(ctx, report); logErr != nil {
		f.log.WarnContext(ctx, "failed to record job_runs entry", "error", logErr)
	}
}

func (f *Factory) logJobRun(ctx context.Context, report notify.Report) error {
	_, err := f.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, kind, started_at, finished_at, succeeded, error,
		 ids_enumerated, ids_fetched, ids_inserted, ids_updated, ids_deleted, ids_errored)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		schema.JobRuns.QualifiedName(),
	),
		report.Kind, report.StartedAt, report.FinishedAt, report.Succeeded, report.Error,
		report.Enumerated, report.Fetched, report.Inserted, report.Updated, report.Deleted, report.Errored,
	)
	if err != nil {
		return dberr.Wrap(err, "jobs_log_job_run")
	}
	return nil
}

// LastSuccessfulRun reports the most recent succeeded=true finished_at for
// kind, backing the readiness endpoint's per-job-kind report.
func (f *Factory) LastSuccessfulRun(kind string) (time.Time, bool) {
	var finishedAt time.Time
	row := f.pool.QueryRow(context.Background(), fmt.Sprintf(
		"SELECT finished_at FROM %s WHERE kind = $1 AND succeeded = true ORDER BY finished_at DESC LIMIT 1",
		schema.JobRuns.QualifiedName(),
	), kind)
	if err := row.Scan(&finishedAt); err != nil {
		return time.Time{}, false
	}
	return finishedAt, true
}
