// Copyright (c) 2026 TMDB-Service. All rights reserved.

package ratelimit_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessielw/tmdb-service/internal/ratelimit"
)

func TestGateCapsConcurrentHolders(t *testing.T) {
	gate := ratelimit.New(1000, 2)

	require.NoError(t, gate.Acquire(context.Background()))
	require.NoError(t, gate.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := gate.Acquire(ctx)
	assert.Error(t, err, "a third acquire should block until a slot frees up")

	gate.Release()
	require.NoError(t, gate.Acquire(context.Background()))
}

func TestGateThrottlesAcquireRate(t *testing.T) {
	gate := ratelimit.New(2, 10)

	ctx := context.Background()
	var acquired int64
	for i := 0; i < 2; i++ {
		require.NoError(t, gate.Acquire(ctx))
		atomic.AddInt64(&acquired, 1)
		gate.Release()
	}

	start := time.Now()
	require.NoError(t, gate.Acquire(ctx))
	gate.Release()
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestGateAcquireRespectsContextCancellation(t *testing.T) {
	gate := ratelimit.New(1, 1)
	require.NoError(t, gate.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gate.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
