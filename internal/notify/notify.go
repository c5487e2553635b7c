// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package notify posts job completion/failure reports to a single webhook URL.
A failed notification never fails the job that triggered it (spec.md §4.9,
§7): Send logs and swallows its own errors.
*/
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Report is the JSON document posted to the webhook on job completion or
// failure.
type Report struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id,omitempty"`
	StartedAt time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`

	Enumerated int `json:"ids_enumerated"`
	Fetched    int `json:"ids_fetched"`
	Inserted   int `json:"ids_inserted"`
	Updated    int `json:"ids_updated"`
	Deleted    int `json:"ids_deleted"`
	Errored    int `json:"ids_errored"`
}

// Notifier posts Reports to a configured webhook URL with HTTP Basic auth.
type Notifier struct {
	http    *http.Client
	enabled bool
	url     string
	user    string
	pass    string
	log     *slog.Logger
}

// New constructs a Notifier. When enabled is false, Send is a no-op, letting
// callers unconditionally call Send without branching on configuration.
func New(httpClient *http.Client, enabled bool, url, user, pass string, log *slog.Logger) *Notifier {
	return &Notifier{http: httpClient, enabled: enabled, url: url, user: user, pass: pass, log: log}
}

// Send posts report to the webhook. Failures are logged and swallowed; the
// caller's job outcome is never affected.
func (n *Notifier) Send(ctx context.Context, report Report) {
	if !n.enabled {
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		n.log.WarnContext(ctx, "notify: marshal report failed", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.log.WarnContext(ctx, "notify: build request failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if n.user != "" {
		req.SetBasicAuth(n.user, n.pass)
	}

	resp, err := n.http.Do(req)
	if err != nil {
		n.log.WarnContext(ctx, "notify: webhook post failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.WarnContext(ctx, "notify: webhook rejected report", "status", resp.StatusCode, "error", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}
