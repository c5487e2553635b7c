// Copyright (c) 2026 TMDB-Service. All rights reserved.

package reconcile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jessielw/tmdb-service/internal/reconcile"
)

type fakeFetcher struct {
	exportIDs    []int64
	exportErr    error
	records      map[int64]any
	notFoundIDs  map[int64]bool
	fetchErrIDs  map[int64]bool
}

func (f *fakeFetcher) FetchExportIDs(ctx context.Context, family string) ([]int64, error) {
	return f.exportIDs, f.exportErr
}

func (f *fakeFetcher) FetchRecord(ctx context.Context, family string, id int64) (any, error) {
	if f.fetchErrIDs[id] {
		return nil, errors.New("boom")
	}
	if f.notFoundIDs[id] {
		return nil, errNotFoundStub
	}
	return f.records[id], nil
}

// errNotFoundStub is a plain error, not upstream.ErrNotFound, so MissingIDs
// treats a fetch that returns it as a failed fetch rather than a 404 skip.
var errNotFoundStub = errors.New("not found")

type fakeUpserter struct {
	upserted []int64
	err      error
}

func (u *fakeUpserter) UpsertRecord(ctx context.Context, family string, record any) error {
	if u.err != nil {
		return u.err
	}
	u.upserted = append(u.upserted, record.(int64))
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMissingIDsPropagatesExportFetchError(t *testing.T) {
	fetcher := &fakeFetcher{exportErr: errors.New("export unavailable")}
	passes := reconcile.New(nil, fetcher, &fakeUpserter{}, discardLogger())

	_, err := passes.MissingIDs(context.Background(), "movie")
	assert.ErrorContains(t, err, "export unavailable")
}

func TestPruneDeletedPropagatesExportFetchError(t *testing.T) {
	fetcher := &fakeFetcher{exportErr: errors.New("export unavailable")}
	passes := reconcile.New(nil, fetcher, &fakeUpserter{}, discardLogger())

	_, err := passes.PruneDeleted(context.Background(), "series")
	assert.ErrorContains(t, err, "export unavailable")
}
