// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package bulkload batches row-batches from the normalizer into multi-row
INSERTs against staging tables, keyed by destination table so each table's
flush is independent and serialized within itself (§4.8: "bulk-loader
flushes are serialized per destination table, not across tables").

Flushing uses [github.com/jackc/pgx/v5]'s Batch/SendBatch the way the
teacher's comicRepository pipelines its junction-table writes
(store_postgres_comic.go's updateJunction), generalized from a single
fixed (comic_id, tag_id) shape to an arbitrary table descriptor plus
ON-CONFLICT-DO-NOTHING for dimension rows sharing a natural key across
records.
*/
package bulkload

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jessielw/tmdb-service/internal/platform/dberr"
	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
)

// Row is anything the normalizer produces that can bind to an INSERT in
// table-column order.
type Row interface {
	Values() []any
}

// Execer is the subset of *pgxpool.Pool / pgx.Tx the loader needs, small
// enough to satisfy with an in-memory fake in tests.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Loader buffers rows per destination table and flushes each table
// independently once its buffer reaches the configured threshold.
type Loader struct {
	db        Execer
	threshold int
	buffers   map[string]*tableBuffer
}

type tableBuffer struct {
	table      schema.Table
	dimension  bool
	rows       []Row
}

// New constructs a Loader flushing to db. threshold is TMDB_BATCH_INSERT.
func New(db Execer, threshold int) *Loader {
	return &Loader{db: db, threshold: threshold, buffers: make(map[string]*tableBuffer)}
}

// Add buffers one row for table, flushing that table's buffer if it has
// reached the threshold. dimension marks tables that must tolerate the same
// natural key appearing in many records (ON CONFLICT DO NOTHING).
func (l *Loader) Add(ctx context.Context, table schema.Table, dimension bool, row Row) error {
	buf, ok := l.buffers[table.Name]
	if !ok {
		buf = &tableBuffer{table: table, dimension: dimension}
		l.buffers[table.Name] = buf
	}
	buf.rows = append(buf.rows, row)
	if len(buf.rows) >= l.threshold {
		return l.flushBuffer(ctx, buf)
	}
	return nil
}

// Flush drains every buffered table, as the producer signaling end of the
// build. Tables are visited in Go map iteration order, so the order in which
// different tables are flushed is not defined.
func (l *Loader) Flush(ctx context.Context) error {
	for _, buf := range l.buffers {
		if err := l.flushBuffer(ctx, buf); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) flushBuffer(ctx context.Context, buf *tableBuffer) error {
	if len(buf.rows) == 0 {
		return nil
	}
	rows := buf.rows
	buf.rows = nil

	insertSQL := buildInsert(buf.table, buf.dimension)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(insertSQL, row.Values()...)
	}

	results := l.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(fmt.Errorf("bulkload: insert into %s: %w", buf.table.Name, err), "bulk_insert")
		}
	}
	return nil
}

// buildInsert returns a parameterized "INSERT INTO t (cols) VALUES
// ($1,...,$n)" statement, with ON CONFLICT DO NOTHING on the table's natural
// key when dimension is set.
func buildInsert(t schema.Table, dimension bool) string {
	placeholders := make([]string, len(t.Columns))
	for i := range t.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.QualifiedName(),
		strings.Join(t.Columns, ", "),
		strings.Join(placeholders, ", "),
	)
	if dimension {
		sql += fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(t.PK, ", "))
	}
	return sql
}
