// Copyright (c) 2026 TMDB-Service. All rights reserved.

package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessielw/tmdb-service/internal/notify"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendPostsReportWithBasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	var body notify.Report

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := notify.New(server.Client(), true, server.URL, "bot", "secret", discardLogger())
	n.Send(context.Background(), notify.Report{Kind: "full_sweep", Succeeded: true, Inserted: 42})

	assert.True(t, gotOK)
	assert.Equal(t, "bot", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "full_sweep", body.Kind)
	assert.Equal(t, 42, body.Inserted)
}

func TestSendIsNoOpWhenDisabled(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	n := notify.New(server.Client(), false, server.URL, "", "", discardLogger())
	n.Send(context.Background(), notify.Report{Kind: "changes_sync"})

	assert.False(t, called)
}

func TestSendSwallowsTransportErrors(t *testing.T) {
	n := notify.New(http.DefaultClient, true, "http://127.0.0.1:0/unreachable", "", "", discardLogger())

	assert.NotPanics(t, func() {
		n.Send(context.Background(), notify.Report{Kind: "missing_ids"})
	})
}

func TestSendLogsNonSuccessStatusWithoutPanicking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := notify.New(server.Client(), true, server.URL, "", "", discardLogger())
	assert.NotPanics(t, func() {
		n.Send(context.Background(), notify.Report{Kind: "prune_deleted"})
	})
}
