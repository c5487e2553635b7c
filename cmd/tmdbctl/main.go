// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Tmdbctl is the thin CLI surface that enqueues jobs against a running
tmdb-service process over its REST API. It holds no ingestion logic of its
own: every subcommand builds one HTTP request and reports the server's
response.

Usage:

	tmdbctl full-sweep
	tmdbctl add-movie --id 603
	tmdbctl test-webhook --message "ping"

See --help on any subcommand for its flags. The target server is configured
via --addr/--api-key or the TMDBCTL_ADDR/TMDBCTL_API_KEY environment
variables.
*/
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	addr   string
	apiKey string

	flagID      string
	flagForce   bool
	flagMessage string
)

func main() {
	root := &cobra.Command{
		Use:   "tmdbctl",
		Short: "Enqueue tmdb-service ingestion jobs over its REST API",
	}

	root.PersistentFlags().StringVar(&addr, "addr", envOr("TMDBCTL_ADDR", "http://localhost:8080"), "tmdb-service base URL")
	root.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("TMDBCTL_API_KEY"), "X-API-Key header value")

	root.AddCommand(
		newGlobalJobCmd("full-sweep", "Rebuild movie and series catalogs from the TMDB export files"),
		newGlobalJobCmd("missing-ids", "Fetch and upsert ids present upstream but absent from live"),
		newGlobalJobCmd("prune-deleted", "Delete live ids absent from the current export file"),
		newGlobalJobCmd("changes-sync", "Reconcile the incremental /changes window"),
		newGlobalJobCmd("create-tables", "Create any missing staging/live tables"),
		newAddCmd("add-movie", "movies"),
		newAddCmd("add-series", "series"),
		newTestWebhookCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newGlobalJobCmd builds a subcommand for one of the family-wide job kinds,
// all of which POST to /jobs/{kind}.
func newGlobalJobCmd(kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/jobs/%s", kind), nil)
		},
	}
}

// newAddCmd builds add-movie/add-series, both POSTing to /{resource}/{id}.
func newAddCmd(use, resource string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Enqueue a single %s refetch by id", resource[:len(resource)-1]),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagID == "" {
				return fmt.Errorf("--id is required")
			}
			return postJSON(fmt.Sprintf("/%s/%s", resource, flagID), nil)
		},
	}
	cmd.Flags().StringVar(&flagID, "id", "", "upstream numeric id to fetch")
	cmd.Flags().BoolVar(&flagForce, "force", false, "ignored by the server today; reserved for a forced refetch")
	return cmd
}

func newTestWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-webhook",
		Short: "Enqueue a job that only exercises the webhook notifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/jobs/test-webhook", map[string]string{"message": flagMessage})
		},
	}
	cmd.Flags().StringVar(&flagMessage, "message", "manual test from tmdbctl", "message included in the webhook payload")
	return cmd
}

// postJSON issues the enqueue request and prints the server's response body.
// A non-2xx status (most notably 409 "already running") is returned as an
// error, which main() reports and exits non-zero on.
func postJSON(path string, body any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequest(http.MethodPost, addr+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		request.Header.Set("X-API-Key", apiKey)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer response.Body.Close()

	out, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode >= 300 {
		return fmt.Errorf("server responded %s: %s", response.Status, string(out))
	}

	fmt.Println(string(out))
	return nil
}
