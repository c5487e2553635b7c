// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const exportBaseURL = "http://files.tmdb.org/p/exports"

// exportFamilyPath maps a family name to the export file's path segment.
func exportFamilyPath(family string) (string, error) {
	switch family {
	case "movie":
		return "movie_ids", nil
	case "series":
		return "tv_series_ids", nil
	default:
		return "", fmt.Errorf("upstream: unknown family %q", family)
	}
}

// FetchExportIDs downloads and parses the daily gzipped NDJSON id-export
// file for family. Per §9's open question, it tries today's UTC date first
// and falls back to yesterday's on 404.
func (c *Client) FetchExportIDs(ctx context.Context, family string) ([]int64, error) {
	segment, err := exportFamilyPath(family)
	if err != nil {
		return nil, err
	}

	today := nowUTC()
	ids, err := c.fetchExportForDate(ctx, segment, today)
	if err == ErrNotFound {
		ids, err = c.fetchExportForDate(ctx, segment, today.AddDate(0, 0, -1))
	}
	return ids, err
}

func (c *Client) fetchExportForDate(ctx context.Context, segment string, date time.Time) ([]int64, error) {
	url := fmt.Sprintf("%s/%s_%s.json.gz", exportBaseURL, segment, date.Format("01_02_2006"))

	if err := c.gate.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.gate.Release()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream: export fetch failed %d for %s", resp.StatusCode, url)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: export gzip: %w", err)
	}
	defer gz.Close()

	var ids []int64
	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry exportLine
		if err := json.Unmarshal(line, &entry); err != nil {
			// Tolerate a malformed line rather than aborting the whole export;
			// schema surprises are a warn-and-skip condition per error taxonomy.
			c.log.Warn("export_line_skipped", "error", err)
			continue
		}
		ids = append(ids, entry.ID)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("upstream: export scan: %w", err)
	}
	return ids, nil
}
