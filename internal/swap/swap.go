// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package swap executes the atomic staging→live rename at the end of a
full_sweep (§4.5): for every table T, drop any pre-existing T_old, rename
the live T to T_old, then rename staging_T to T — all inside one
transaction per family so readers never observe a half-swapped catalog.
*/
package swap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jessielw/tmdb-service/internal/platform/constants"
	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
	"github.com/jessielw/tmdb-service/internal/platform/dberr"
)

// Execute runs the rename sequence for every table in tables inside a single
// transaction begun on pool. Per §9's open question, any pre-existing
// T_old is dropped before live is renamed to T_old — generations are never
// silently accumulated.
func Execute(ctx context.Context, pool *pgxpool.Pool, tables []schema.Table) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("swap: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range tables {
		oldName := t.Name + "_old"
		stagingName := "staging_" + t.Name

		if _, err := tx.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s.%s", constants.SchemaPublic, oldName)); err != nil {
			return dberr.Wrap(fmt.Errorf("swap: drop old %s: %w", oldName, err), "swap_drop_old")
		}

		var liveExists bool
		err := tx.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema=$1 AND table_name=$2)",
			constants.SchemaPublic, t.Name,
		).Scan(&liveExists)
		if err != nil {
			return dberr.Wrap(fmt.Errorf("swap: check live %s: %w", t.Name, err), "swap_check_live")
		}
		if liveExists {
			if _, err := tx.Exec(ctx, fmt.Sprintf("ALTER TABLE %s.%s RENAME TO %s", constants.SchemaPublic, t.Name, oldName)); err != nil {
				return dberr.Wrap(fmt.Errorf("swap: rename live %s: %w", t.Name, err), "swap_rename_live")
			}
		}

		if _, err := tx.Exec(ctx, fmt.Sprintf("ALTER TABLE %s.%s RENAME TO %s", constants.SchemaPublic, stagingName, t.Name)); err != nil {
			return dberr.Wrap(fmt.Errorf("swap: rename staging %s: %w", stagingName, err), "swap_rename_staging")
		}

		// The rename above consumes staging_T; recreate it immediately so the
		// next full_sweep's truncate has a table to truncate. LIKE never
		// copies foreign keys, matching the original staging table's shape.
		createStaging := fmt.Sprintf(
			"CREATE TABLE %s.%s (LIKE %s.%s INCLUDING DEFAULTS INCLUDING CONSTRAINTS INCLUDING INDEXES)",
			constants.SchemaPublic, stagingName, constants.SchemaPublic, t.Name,
		)
		if _, err := tx.Exec(ctx, createStaging); err != nil {
			return dberr.Wrap(fmt.Errorf("swap: recreate staging %s: %w", stagingName, err), "swap_recreate_staging")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("swap: commit: %w", err)
	}
	return nil
}
