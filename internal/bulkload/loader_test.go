// Copyright (c) 2026 TMDB-Service. All rights reserved.

package bulkload_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessielw/tmdb-service/internal/bulkload"
	"github.com/jessielw/tmdb-service/internal/model"
	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
)

// fakeExecer records every statement queued through SendBatch without
// touching a real database, the way the package doc promises interfaces
// gated storage-touching logic for in-memory testing.
type fakeExecer struct {
	queries []string
	args    [][]any
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return pgconn.CommandTag{}, nil
}

func (f *fakeExecer) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	for _, q := range b.QueuedQueries {
		f.queries = append(f.queries, q.SQL)
		f.args = append(f.args, q.Arguments)
	}
	return &fakeBatchResults{remaining: len(b.QueuedQueries)}
}

type fakeBatchResults struct{ remaining int }

func (f *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	f.remaining--
	return pgconn.CommandTag{}, nil
}
func (f *fakeBatchResults) Query() (pgx.Rows, error)    { return nil, nil }
func (f *fakeBatchResults) QueryRow() pgx.Row           { return nil }
func (f *fakeBatchResults) QueryFunc(dst []any, fn func(pgx.QueryFuncRow) error) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (f *fakeBatchResults) Close() error { return nil }

func TestLoaderFlushesOnThreshold(t *testing.T) {
	db := &fakeExecer{}
	loader := bulkload.New(db, 2)

	ctx := context.Background()
	require.NoError(t, loader.Add(ctx, schema.StagingMovieGenres, true, model.Genre{ID: 1, Name: "Action"}))
	assert.Empty(t, db.queries, "buffer below threshold should not flush")

	require.NoError(t, loader.Add(ctx, schema.StagingMovieGenres, true, model.Genre{ID: 2, Name: "Drama"}))
	assert.Len(t, db.queries, 2, "threshold reached should flush both buffered rows")
	for _, q := range db.queries {
		assert.Contains(t, q, "ON CONFLICT")
	}
}

func TestLoaderFlushDrainsRemainingRows(t *testing.T) {
	db := &fakeExecer{}
	loader := bulkload.New(db, 100)

	ctx := context.Background()
	require.NoError(t, loader.Add(ctx, schema.StagingMovie, false, model.Movie{ID: 603, Title: "The Matrix"}))
	assert.Empty(t, db.queries)

	require.NoError(t, loader.Flush(ctx))
	require.Len(t, db.queries, 1)
	assert.NotContains(t, db.queries[0], "ON CONFLICT")
}
