// Copyright (c) 2026 TMDB-Service. All rights reserved.

package changes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jessielw/tmdb-service/internal/model"
	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
	"github.com/jessielw/tmdb-service/internal/platform/dberr"
	"github.com/jessielw/tmdb-service/internal/upstream"
)

// Row is anything the normalizer produces that can bind to an INSERT in
// table-column order, matching bulkload.Row.
type Row interface {
	Values() []any
}

// Fetcher is the subset of *upstream.Client the reconciler needs.
type Fetcher interface {
	FetchChangedIDs(ctx context.Context, family string, start, end time.Time) ([]int64, error)
	FetchRecord(ctx context.Context, family string, id int64) (any, error)
}

// Result summarizes one changes_sync run for the job_runs log.
type Result struct {
	Enumerated int
	Upserted   int
	Deleted    int
	Errored    int
}

// Reconciler runs the incremental /changes sync for one family against the
// live tables, bypassing the staging area a full_sweep uses (§4.6: "upsert
// into live tables" directly, not via swap).
type Reconciler struct {
	pool    *pgxpool.Pool
	fetcher Fetcher
	log     *slog.Logger
}

func New(pool *pgxpool.Pool, fetcher Fetcher, log *slog.Logger) *Reconciler {
	return &Reconciler{pool: pool, fetcher: fetcher, log: log}
}

// Run executes one changes_sync pass for family. now is passed in rather
// than read from time.Now so callers (and tests) control the clock.
func (r *Reconciler) Run(ctx context.Context, family string, now time.Time) (Result, error) {
	var res Result

	lastSync, hasSynced, lastSweep, hasSweep, err := r.loadSyncState(ctx, family)
	if err != nil {
		return res, err
	}

	if SkipAfterSweep(now, lastSweep, hasSweep) {
		r.log.InfoContext(ctx, "changes_sync skipped, recent full_sweep covers window", "family", family)
		return res, r.advanceSyncedAt(ctx, family, now)
	}

	start, end := Window(now, lastSync, hasSynced)
	ids, err := r.fetcher.FetchChangedIDs(ctx, family, start, end)
	if err != nil {
		return res, fmt.Errorf("changes: fetch changed ids: %w", err)
	}
	res.Enumerated = len(ids)

	var deadIDs []int64
	for _, id := range ids {
		record, err := r.fetcher.FetchRecord(ctx, family, id)
		if errors.Is(err, upstream.ErrNotFound) {
			deadIDs = append(deadIDs, id)
			continue
		}
		if err != nil {
			res.Errored++
			r.log.WarnContext(ctx, "changes_sync record fetch failed", "family", family, "id", id, "error", err)
			continue
		}
		if err := r.upsert(ctx, family, record); err != nil {
			res.Errored++
			r.log.WarnContext(ctx, "changes_sync upsert failed", "family", family, "id", id, "error", err)
			continue
		}
		res.Upserted++
	}

	if len(deadIDs) > 0 {
		n, err := r.deleteDead(ctx, family, deadIDs)
		if err != nil {
			return res, err
		}
		res.Deleted = n
	}

	return res, r.advanceSyncedAt(ctx, family, now)
}

func (r *Reconciler) loadSyncState(ctx context.Context, family string) (lastSync time.Time, hasSynced bool, lastSweep time.Time, hasSweep bool, err error) {
	var syncN, sweepN *time.Time
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT last_successful_changes_sync, last_successful_full_sweep FROM %s WHERE family = $1", schema.SyncState.QualifiedName()),
		family,
	)
	scanErr := row.Scan(&syncN, &sweepN)
	if errors.Is(scanErr, pgx.ErrNoRows) {
		return time.Time{}, false, time.Time{}, false, nil
	}
	if scanErr != nil {
		return time.Time{}, false, time.Time{}, false, dberr.Wrap(scanErr, "changes_load_sync_state")
	}
	if syncN != nil {
		lastSync, hasSynced = *syncN, true
	}
	if sweepN != nil {
		lastSweep, hasSweep = *sweepN, true
	}
	return lastSync, hasSynced, lastSweep, hasSweep, nil
}

func (r *Reconciler) advanceSyncedAt(ctx context.Context, family string, now time.Time) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (family, last_successful_changes_sync, last_successful_full_sweep)
		 VALUES ($1, $2, NULL)
		 ON CONFLICT (family) DO UPDATE SET last_successful_changes_sync = EXCLUDED.last_successful_changes_sync`,
		schema.SyncState.QualifiedName(),
	), family, now)
	if err != nil {
		return dberr.Wrap(err, "changes_advance_sync_state")
	}
	return nil
}

// UpsertRecord exposes upsert for the reconcile package's missing_ids pass,
// which fetches a record the same way changes_sync does but reaches it via a
// different id set (the export file diff rather than /changes).
func (r *Reconciler) UpsertRecord(ctx context.Context, family string, record any) error {
	return r.upsert(ctx, family, record)
}

// upsert replaces one record's rows in the live tables: child and
// association rows scoped to the record are deleted and reinserted, dimension
// rows are upserted with ON CONFLICT DO NOTHING, and the root row is upserted
// with ON CONFLICT DO UPDATE.
func (r *Reconciler) upsert(ctx context.Context, family string, record any) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "changes_begin_upsert")
	}
	defer tx.Rollback(ctx)

	switch family {
	case "movie":
		build, ok := record.(*model.MovieBuild)
		if !ok {
			return fmt.Errorf("changes: expected *model.MovieBuild, got %T", record)
		}
		if err := upsertMovie(ctx, tx, build); err != nil {
			return err
		}
	case "series":
		build, ok := record.(*model.SeriesBuild)
		if !ok {
			return fmt.Errorf("changes: expected *model.SeriesBuild, got %T", record)
		}
		if err := upsertSeries(ctx, tx, build); err != nil {
			return err
		}
	default:
		return fmt.Errorf("changes: unknown family %q", family)
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "changes_commit_upsert")
	}
	return nil
}

// deleteDead removes dead root ids from the live tables. Child and
// association rows are deleted explicitly, table by table, before the root
// row: after a full_sweep swap the live tables are the former staging
// tables, which carry no foreign keys, so ON DELETE CASCADE cannot be relied
// on. The returned count is the number of root rows deleted.
func (r *Reconciler) deleteDead(ctx context.Context, family string, ids []int64) (int, error) {
	root, tables, fkColumn := schema.Movie, schema.MovieTables, "movie_id"
	if family == "series" {
		root, tables, fkColumn = schema.Series, schema.SeriesTables, "series_id"
	}
	for _, t := range tables {
		for _, c := range t.Columns {
			if c != fkColumn {
				continue
			}
			if _, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", t.QualifiedName(), fkColumn), ids); err != nil {
				return 0, dberr.Wrap(err, "changes_delete_dead_children")
			}
		}
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", root.QualifiedName()), ids)
	if err != nil {
		return 0, dberr.Wrap(err, "changes_delete_dead")
	}
	return int(tag.RowsAffected()), nil
}

func upsertMovie(ctx context.Context, tx pgx.Tx, b *model.MovieBuild) error {
	if b.Collection != nil {
		if err := upsertDimension(ctx, tx, schema.MovieCollections, *b.Collection); err != nil {
			return err
		}
	}
	if err := upsertRoot(ctx, tx, schema.Movie, b.Movie); err != nil {
		return err
	}

	if err := upsertDimensions(ctx, tx, schema.MovieGenres, rows(b.Genres)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieGenresAssoc, "movie_id", b.Movie.ID, rows(b.GenreAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.MovieProductionCompanies, rows(b.Companies)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieCompaniesAssoc, "movie_id", b.Movie.ID, rows(b.CompanyAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.MovieProductionCountries, rows(b.Countries)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieCountriesAssoc, "movie_id", b.Movie.ID, rows(b.CountryAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.MovieSpokenLanguages, rows(b.Languages)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieLanguagesAssoc, "movie_id", b.Movie.ID, rows(b.LanguageAssocs)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieAlternativeTitles, "movie_id", b.Movie.ID, rows(b.AlternativeTitles)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.MovieCastMembers, rows(b.CastMembers)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieCastAssoc, "movie_id", b.Movie.ID, rows(b.CastAssocs)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieExternalIDs, "movie_id", b.Movie.ID, []Row{b.ExternalIDs}); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.MovieKeywords, rows(b.Keywords)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieKeywordsAssoc, "movie_id", b.Movie.ID, rows(b.KeywordAssocs)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieReleaseDates, "movie_id", b.Movie.ID, rows(b.ReleaseDates)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.MovieVideos, "movie_id", b.Movie.ID, rows(b.Videos)); err != nil {
		return err
	}
	return nil
}

func upsertSeries(ctx context.Context, tx pgx.Tx, b *model.SeriesBuild) error {
	if b.LastEpisodeToAir != nil {
		if err := replaceChildren(ctx, tx, schema.SeriesLastEpisodeToAir, "series_id", b.Series.ID, []Row{*b.LastEpisodeToAir}); err != nil {
			return err
		}
	}
	if b.NextEpisodeToAir != nil {
		if err := replaceChildren(ctx, tx, schema.SeriesNextEpisodeToAir, "series_id", b.Series.ID, []Row{*b.NextEpisodeToAir}); err != nil {
			return err
		}
	}
	if err := upsertRoot(ctx, tx, schema.Series, b.Series); err != nil {
		return err
	}

	if err := upsertDimensions(ctx, tx, schema.SeriesGenres, rows(b.Genres)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesGenresAssoc, "series_id", b.Series.ID, rows(b.GenreAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesProductionCompanies, rows(b.Companies)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesCompaniesAssoc, "series_id", b.Series.ID, rows(b.CompanyAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesProductionCountries, rows(b.Countries)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesCountriesAssoc, "series_id", b.Series.ID, rows(b.CountryAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesSpokenLanguages, rows(b.Languages)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesLanguagesAssoc, "series_id", b.Series.ID, rows(b.LanguageAssocs)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesAlternativeTitles, "series_id", b.Series.ID, rows(b.AlternativeTitles)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesCastMembers, rows(b.CastMembers)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesCastAssoc, "series_id", b.Series.ID, rows(b.CastAssocs)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesExternalIDs, "series_id", b.Series.ID, []Row{b.ExternalIDs}); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesKeywords, rows(b.Keywords)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesKeywordsAssoc, "series_id", b.Series.ID, rows(b.KeywordAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesCreatedBy, rows(b.Creators)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesCreatedByAssoc, "series_id", b.Series.ID, rows(b.CreatorAssocs)); err != nil {
		return err
	}
	if err := upsertDimensions(ctx, tx, schema.SeriesNetworks, rows(b.Networks)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesNetworksAssoc, "series_id", b.Series.ID, rows(b.NetworkAssocs)); err != nil {
		return err
	}
	if err := replaceChildren(ctx, tx, schema.SeriesSeasons, "series_id", b.Series.ID, rows(b.Seasons)); err != nil {
		return err
	}
	return nil
}

// rows adapts a concrete []T of model row types (each satisfying Row) to
// []Row, since Go does not implicitly convert slice element types.
func rows[T Row](in []T) []Row {
	out := make([]Row, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func upsertRoot(ctx context.Context, tx pgx.Tx, t schema.Table, row Row) error {
	sql := upsertSQL(t)
	if _, err := tx.Exec(ctx, sql, row.Values()...); err != nil {
		return dberr.Wrap(fmt.Errorf("changes: upsert root %s: %w", t.Name, err), "changes_upsert_root")
	}
	return nil
}

func upsertDimension(ctx context.Context, tx pgx.Tx, t schema.Table, row Row) error {
	return upsertDimensions(ctx, tx, t, []Row{row})
}

func upsertDimensions(ctx context.Context, tx pgx.Tx, t schema.Table, in []Row) error {
	if len(in) == 0 {
		return nil
	}
	sql := insertIgnoreSQL(t)
	for _, row := range in {
		if _, err := tx.Exec(ctx, sql, row.Values()...); err != nil {
			return dberr.Wrap(fmt.Errorf("changes: upsert dimension %s: %w", t.Name, err), "changes_upsert_dimension")
		}
	}
	return nil
}

// replaceChildren deletes every row scoped to rootID in t and reinserts the
// rows the current fetch produced, the delete-then-insert pattern §4.6 calls
// for since child rows carry no stable natural key to diff against.
func replaceChildren(ctx context.Context, tx pgx.Tx, t schema.Table, rootColumn string, rootID int64, in []Row) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.QualifiedName(), rootColumn), rootID); err != nil {
		return dberr.Wrap(fmt.Errorf("changes: clear children %s: %w", t.Name, err), "changes_clear_children")
	}
	if len(in) == 0 {
		return nil
	}
	sql := insertSQL(t)
	for _, row := range in {
		if _, err := tx.Exec(ctx, sql, row.Values()...); err != nil {
			return dberr.Wrap(fmt.Errorf("changes: insert child %s: %w", t.Name, err), "changes_insert_child")
		}
	}
	return nil
}

func insertSQL(t schema.Table) string {
	placeholders := make([]string, len(t.Columns))
	for i := range t.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.QualifiedName(), strings.Join(t.Columns, ", "), strings.Join(placeholders, ", "))
}

func insertIgnoreSQL(t schema.Table) string {
	return insertSQL(t) + fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(t.PK, ", "))
}

func upsertSQL(t schema.Table) string {
	setClauses := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if contains(t.PK, col) {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	return insertSQL(t) + fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(t.PK, ", "), strings.Join(setClauses, ", "))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
