// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package ingest drives full_sweep: enumerate every id in the daily export
file, fetch and normalize each record into the staging tables via
[internal/bulkload], then atomically swap staging into live via
[internal/swap]. This is the only job that writes through staging; every
other job (changes_sync, missing_ids) writes the live tables directly.
*/
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jessielw/tmdb-service/internal/bulkload"
	"github.com/jessielw/tmdb-service/internal/model"
	"github.com/jessielw/tmdb-service/internal/platform/database/schema"
	"github.com/jessielw/tmdb-service/internal/swap"
)

// Fetcher is the subset of *upstream.Client a full_sweep needs.
type Fetcher interface {
	FetchExportIDs(ctx context.Context, family string) ([]int64, error)
	FetchRecord(ctx context.Context, family string, id int64) (any, error)
}

// Result summarizes one full_sweep pass for the job_runs log.
type Result struct {
	Enumerated int
	Fetched    int
	Errored    int
}

// Sweeper runs full_sweep for one family at a time.
type Sweeper struct {
	pool      *pgxpool.Pool
	fetcher   Fetcher
	threshold int
	log       *slog.Logger
}

func New(pool *pgxpool.Pool, fetcher Fetcher, batchThreshold int, log *slog.Logger) *Sweeper {
	return &Sweeper{pool: pool, fetcher: fetcher, threshold: batchThreshold, log: log}
}

// Run rebuilds family's staging tables from scratch and swaps them into
// live. The previous live generation is preserved as *_old until the next
// full_sweep for the same family drops it (§9).
func (s *Sweeper) Run(ctx context.Context, family string) (Result, error) {
	var res Result

	ids, err := s.fetcher.FetchExportIDs(ctx, family)
	if err != nil {
		return res, fmt.Errorf("ingest: fetch export ids: %w", err)
	}
	res.Enumerated = len(ids)

	if err := s.truncateStaging(ctx, family); err != nil {
		return res, err
	}

	loader := bulkload.New(s.pool, s.threshold)
	for _, id := range ids {
		record, err := s.fetcher.FetchRecord(ctx, family, id)
		if err != nil {
			res.Errored++
			s.log.WarnContext(ctx, "full_sweep record fetch failed", "family", family, "id", id, "error", err)
			continue
		}
		if err := s.buffer(ctx, loader, family, record); err != nil {
			res.Errored++
			s.log.WarnContext(ctx, "full_sweep buffer failed", "family", family, "id", id, "error", err)
			continue
		}
		res.Fetched++
	}

	if err := loader.Flush(ctx); err != nil {
		return res, fmt.Errorf("ingest: flush staging: %w", err)
	}

	tables := schema.MovieTables
	if family == "series" {
		tables = schema.SeriesTables
	}
	if err := swap.Execute(ctx, s.pool, tables); err != nil {
		return res, fmt.Errorf("ingest: swap: %w", err)
	}
	return res, nil
}

// truncateStaging empties every staging table for family before a fresh
// build, so a resumed or rerun full_sweep never mixes generations.
func (s *Sweeper) truncateStaging(ctx context.Context, family string) error {
	tables := schema.MovieTables
	if family == "series" {
		tables = schema.SeriesTables
	}
	for _, t := range tables {
		staging := schema.Staging(t)
		if _, err := s.pool.Exec(ctx, "TRUNCATE TABLE "+staging.QualifiedName()); err != nil {
			return fmt.Errorf("ingest: truncate %s: %w", staging.Name, err)
		}
	}
	return nil
}

func (s *Sweeper) buffer(ctx context.Context, loader *bulkload.Loader, family string, record any) error {
	switch family {
	case "movie":
		build, ok := record.(*model.MovieBuild)
		if !ok {
			return fmt.Errorf("ingest: expected *model.MovieBuild, got %T", record)
		}
		return bufferMovie(ctx, loader, build)
	case "series":
		build, ok := record.(*model.SeriesBuild)
		if !ok {
			return fmt.Errorf("ingest: expected *model.SeriesBuild, got %T", record)
		}
		return bufferSeries(ctx, loader, build)
	default:
		return fmt.Errorf("ingest: unknown family %q", family)
	}
}

func bufferMovie(ctx context.Context, l *bulkload.Loader, b *model.MovieBuild) error {
	add := func(t schema.Table, dimension bool, row bulkload.Row) error {
		return l.Add(ctx, schema.Staging(t), dimension, row)
	}
	if b.Collection != nil {
		if err := add(schema.MovieCollections, true, *b.Collection); err != nil {
			return err
		}
	}
	if err := add(schema.Movie, false, b.Movie); err != nil {
		return err
	}
	for _, g := range b.Genres {
		if err := add(schema.MovieGenres, true, g); err != nil {
			return err
		}
	}
	for _, a := range b.GenreAssocs {
		if err := add(schema.MovieGenresAssoc, false, a); err != nil {
			return err
		}
	}
	for _, c := range b.Companies {
		if err := add(schema.MovieProductionCompanies, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CompanyAssocs {
		if err := add(schema.MovieCompaniesAssoc, false, a); err != nil {
			return err
		}
	}
	for _, c := range b.Countries {
		if err := add(schema.MovieProductionCountries, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CountryAssocs {
		if err := add(schema.MovieCountriesAssoc, false, a); err != nil {
			return err
		}
	}
	for _, lg := range b.Languages {
		if err := add(schema.MovieSpokenLanguages, true, lg); err != nil {
			return err
		}
	}
	for _, a := range b.LanguageAssocs {
		if err := add(schema.MovieLanguagesAssoc, false, a); err != nil {
			return err
		}
	}
	for _, t := range b.AlternativeTitles {
		if err := add(schema.MovieAlternativeTitles, false, t); err != nil {
			return err
		}
	}
	for _, c := range b.CastMembers {
		if err := add(schema.MovieCastMembers, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CastAssocs {
		if err := add(schema.MovieCastAssoc, false, a); err != nil {
			return err
		}
	}
	if err := add(schema.MovieExternalIDs, false, b.ExternalIDs); err != nil {
		return err
	}
	for _, k := range b.Keywords {
		if err := add(schema.MovieKeywords, true, k); err != nil {
			return err
		}
	}
	for _, a := range b.KeywordAssocs {
		if err := add(schema.MovieKeywordsAssoc, false, a); err != nil {
			return err
		}
	}
	for _, rd := range b.ReleaseDates {
		if err := add(schema.MovieReleaseDates, false, rd); err != nil {
			return err
		}
	}
	for _, v := range b.Videos {
		if err := add(schema.MovieVideos, false, v); err != nil {
			return err
		}
	}
	return nil
}

func bufferSeries(ctx context.Context, l *bulkload.Loader, b *model.SeriesBuild) error {
	add := func(t schema.Table, dimension bool, row bulkload.Row) error {
		return l.Add(ctx, schema.Staging(t), dimension, row)
	}
	if b.LastEpisodeToAir != nil {
		if err := add(schema.SeriesLastEpisodeToAir, false, *b.LastEpisodeToAir); err != nil {
			return err
		}
	}
	if b.NextEpisodeToAir != nil {
		if err := add(schema.SeriesNextEpisodeToAir, false, *b.NextEpisodeToAir); err != nil {
			return err
		}
	}
	if err := add(schema.Series, false, b.Series); err != nil {
		return err
	}
	for _, g := range b.Genres {
		if err := add(schema.SeriesGenres, true, g); err != nil {
			return err
		}
	}
	for _, a := range b.GenreAssocs {
		if err := add(schema.SeriesGenresAssoc, false, a); err != nil {
			return err
		}
	}
	for _, c := range b.Companies {
		if err := add(schema.SeriesProductionCompanies, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CompanyAssocs {
		if err := add(schema.SeriesCompaniesAssoc, false, a); err != nil {
			return err
		}
	}
	for _, c := range b.Countries {
		if err := add(schema.SeriesProductionCountries, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CountryAssocs {
		if err := add(schema.SeriesCountriesAssoc, false, a); err != nil {
			return err
		}
	}
	for _, lg := range b.Languages {
		if err := add(schema.SeriesSpokenLanguages, true, lg); err != nil {
			return err
		}
	}
	for _, a := range b.LanguageAssocs {
		if err := add(schema.SeriesLanguagesAssoc, false, a); err != nil {
			return err
		}
	}
	for _, t := range b.AlternativeTitles {
		if err := add(schema.SeriesAlternativeTitles, false, t); err != nil {
			return err
		}
	}
	for _, c := range b.CastMembers {
		if err := add(schema.SeriesCastMembers, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CastAssocs {
		if err := add(schema.SeriesCastAssoc, false, a); err != nil {
			return err
		}
	}
	if err := add(schema.SeriesExternalIDs, false, b.ExternalIDs); err != nil {
		return err
	}
	for _, k := range b.Keywords {
		if err := add(schema.SeriesKeywords, true, k); err != nil {
			return err
		}
	}
	for _, a := range b.KeywordAssocs {
		if err := add(schema.SeriesKeywordsAssoc, false, a); err != nil {
			return err
		}
	}
	for _, c := range b.Creators {
		if err := add(schema.SeriesCreatedBy, true, c); err != nil {
			return err
		}
	}
	for _, a := range b.CreatorAssocs {
		if err := add(schema.SeriesCreatedByAssoc, false, a); err != nil {
			return err
		}
	}
	for _, n := range b.Networks {
		if err := add(schema.SeriesNetworks, true, n); err != nil {
			return err
		}
	}
	for _, a := range b.NetworkAssocs {
		if err := add(schema.SeriesNetworksAssoc, false, a); err != nil {
			return err
		}
	}
	for _, season := range b.Seasons {
		if err := add(schema.SeriesSeasons, false, season); err != nil {
			return err
		}
	}
	return nil
}
