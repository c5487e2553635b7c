// Copyright (c) 2026 TMDB-Service. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jessielw/tmdb-service/internal/platform/ctxutil"
)

func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

func TestContext_JobID(t *testing.T) {
	ctx := context.Background()
	jobID := "test-job-id"

	assert.Empty(t, ctxutil.GetJobID(ctx))

	ctx = ctxutil.WithJobID(ctx, jobID)
	assert.Equal(t, jobID, ctxutil.GetJobID(ctx))
}

func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}
