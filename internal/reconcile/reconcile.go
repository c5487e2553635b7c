// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package reconcile implements the missing_ids and prune_deleted passes: both
diff the full upstream export id set against the live root table's id set and
act on the difference, rather than touching upstream per id the way
changes_sync does.
*/
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
	"github.com/jessielw/tmdb-service/internal/platform/dberr"
	"github.com/jessielw/tmdb-service/internal/upstream"
)

// Fetcher is the subset of *upstream.Client the passes need.
type Fetcher interface {
	FetchExportIDs(ctx context.Context, family string) ([]int64, error)
	FetchRecord(ctx context.Context, family string, id int64) (any, error)
}

// Upserter is the subset of *changes.Reconciler the missing_ids pass reuses
// to write a fetched record into the live tables, sharing the same
// delete-then-insert logic changes_sync uses rather than duplicating it.
type Upserter interface {
	UpsertRecord(ctx context.Context, family string, record any) error
}

type Result struct {
	Considered int
	Changed    int
	Errored    int
}

type Passes struct {
	pool    *pgxpool.Pool
	fetcher Fetcher
	upsert  Upserter
	log     *slog.Logger
}

func New(pool *pgxpool.Pool, fetcher Fetcher, upsert Upserter, log *slog.Logger) *Passes {
	return &Passes{pool: pool, fetcher: fetcher, upsert: upsert, log: log}
}

// MissingIDs fetches every id the export file lists for family, finds the
// ones absent from the live root table, and fetches+inserts each one (§4.7:
// "recovers from a missed or partial full_sweep without re-downloading
// everything").
func (p *Passes) MissingIDs(ctx context.Context, family string) (Result, error) {
	var res Result

	exportIDs, err := p.fetcher.FetchExportIDs(ctx, family)
	if err != nil {
		return res, fmt.Errorf("reconcile: fetch export ids: %w", err)
	}

	liveIDs, err := p.loadLiveIDs(ctx, family)
	if err != nil {
		return res, err
	}

	for _, id := range exportIDs {
		if _, ok := liveIDs[id]; ok {
			continue
		}
		res.Considered++
		record, err := p.fetcher.FetchRecord(ctx, family, id)
		if errors.Is(err, upstream.ErrNotFound) {
			continue
		}
		if err != nil {
			res.Errored++
			p.log.WarnContext(ctx, "missing_ids fetch failed", "family", family, "id", id, "error", err)
			continue
		}
		if err := p.upsert.UpsertRecord(ctx, family, record); err != nil {
			res.Errored++
			p.log.WarnContext(ctx, "missing_ids upsert failed", "family", family, "id", id, "error", err)
			continue
		}
		res.Changed++
	}
	return res, nil
}

// PruneDeleted deletes live root rows whose id is absent from the export
// file's id set, the mirror's only signal that upstream stopped listing a
// record entirely (§4.7).
func (p *Passes) PruneDeleted(ctx context.Context, family string) (Result, error) {
	var res Result

	exportIDs, err := p.fetcher.FetchExportIDs(ctx, family)
	if err != nil {
		return res, fmt.Errorf("reconcile: fetch export ids: %w", err)
	}
	exportSet := make(map[int64]struct{}, len(exportIDs))
	for _, id := range exportIDs {
		exportSet[id] = struct{}{}
	}

	liveIDs, err := p.loadLiveIDs(ctx, family)
	if err != nil {
		return res, err
	}

	var toPrune []int64
	for id := range liveIDs {
		res.Considered++
		if _, ok := exportSet[id]; !ok {
			toPrune = append(toPrune, id)
		}
	}
	if len(toPrune) == 0 {
		return res, nil
	}

	root := schema.Movie
	if family == "series" {
		root = schema.Series
	}
	tag, err := p.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", root.QualifiedName()), toPrune)
	if err != nil {
		return res, dberr.Wrap(err, "reconcile_prune_deleted")
	}
	res.Changed = int(tag.RowsAffected())
	return res, nil
}

func (p *Passes) loadLiveIDs(ctx context.Context, family string) (map[int64]struct{}, error) {
	root := schema.Movie
	if family == "series" {
		root = schema.Series
	}
	rows, err := p.pool.Query(ctx, fmt.Sprintf("SELECT id FROM %s", root.QualifiedName()))
	if err != nil {
		return nil, dberr.Wrap(err, "reconcile_load_live_ids")
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "reconcile_scan_live_id")
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}
