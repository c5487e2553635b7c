// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package upstream is the authenticated HTTP client for the TMDB-shaped
catalog API: per-id aggregate record fetches, the daily gzipped id-export
files, and the incremental /changes endpoint.

It is grounded on the TMDB client shapes in the retrieved reference clients
(godver3-strmr's tmdb_client.go and germainlefebvre4-Stalkeer's tmdb.go):
bearer auth and append_to_response aggregation. Retries use
[github.com/cenkalti/backoff/v4] instead of the references' hand-rolled
doubling loop, and JSON decoding uses [github.com/goccy/go-json] for speed
on the large aggregate payloads.
*/
package upstream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"

	"github.com/jessielw/tmdb-service/internal/platform/constants"
	"github.com/jessielw/tmdb-service/internal/ratelimit"
)

const baseURL = "https://api.themoviedb.org/3"

// Client issues rate-limited, retried requests against the upstream API.
type Client struct {
	http  *http.Client
	token string
	gate  *ratelimit.Gate
	log   *slog.Logger
}

// New constructs a Client. gate enforces §4.1's joint rate/concurrency cap;
// it is shared process-wide across every Client method.
func New(token string, gate *ratelimit.Gate, log *slog.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: constants.UpstreamRequestTimeout},
		token: token,
		gate:  gate,
		log:   log,
	}
}

// doGET performs one rate-limited, retried GET against path and decodes the
// JSON body into out. ErrNotFound is returned for a 404 without retrying;
// ErrUnauthorized is returned for 401/403 without retrying.
func (c *Client) doGET(ctx context.Context, path string, query map[string]string, out any) error {
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), constants.UpstreamMaxAttempts-1)
	policy = backoff.WithContext(policy, ctx)

	return backoff.Retry(func() error {
		if err := c.gate.Acquire(ctx); err != nil {
			return backoff.Permanent(err)
		}
		defer c.gate.Release()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()

		resp, err := c.http.Do(req)
		if err != nil {
			return err // transport error: retryable
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(ErrNotFound)
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(ErrUnauthorized)
		case resp.StatusCode == http.StatusTooManyRequests:
			if retryAfter := parseRetryAfter(resp.Header.Get("Retry-After")); retryAfter > 0 {
				select {
				case <-time.After(retryAfter):
				case <-ctx.Done():
					return backoff.Permanent(ctx.Err())
				}
			}
			return fmt.Errorf("upstream: rate limited: %s", path)
		case resp.StatusCode >= 500:
			return fmt.Errorf("upstream: server error %d on %s", resp.StatusCode, path)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("upstream: request failed %d on %s", resp.StatusCode, path))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("upstream: decode %s: %w", path, err))
		}
		return nil
	}, policy)
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		return time.Duration(secs) * time.Second
	}
	return 0
}
