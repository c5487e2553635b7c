// Copyright (c) 2026 TMDB-Service. All rights reserved.

package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessielw/tmdb-service/internal/scheduler"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnqueueRejectsDuplicateGlobalJob(t *testing.T) {
	sched := scheduler.New(discardLogger())

	release := make(chan struct{})
	started := make(chan struct{})
	job := scheduler.Job{
		Kind: scheduler.KindFullSweep,
		Run: func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		},
	}

	require.NoError(t, sched.Enqueue(context.Background(), job))
	<-started

	err := sched.Enqueue(context.Background(), job)
	assert.ErrorIs(t, err, scheduler.ErrAlreadyRunning)

	close(release)
	sched.Shutdown(time.Second)
}

func TestEnqueuePerIDJobsAreIndependent(t *testing.T) {
	sched := scheduler.New(discardLogger())

	var mu sync.Mutex
	var ran []string
	wg := sync.WaitGroup{}
	wg.Add(2)

	makeJob := func(id string) scheduler.Job {
		return scheduler.Job{
			Kind: scheduler.KindAddMovie,
			ID:   id,
			Run: func(ctx context.Context) error {
				defer wg.Done()
				mu.Lock()
				ran = append(ran, id)
				mu.Unlock()
				return nil
			},
		}
	}

	require.NoError(t, sched.Enqueue(context.Background(), makeJob("603")))
	require.NoError(t, sched.Enqueue(context.Background(), makeJob("604")))

	wg.Wait()
	sched.Shutdown(time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"603", "604"}, ran)
}

func TestEnqueueReleasesKeyAfterCompletion(t *testing.T) {
	sched := scheduler.New(discardLogger())
	done := make(chan struct{})

	job := scheduler.Job{
		Kind: scheduler.KindPruneDeleted,
		Run: func(ctx context.Context) error {
			close(done)
			return nil
		},
	}

	require.NoError(t, sched.Enqueue(context.Background(), job))
	<-done

	require.Eventually(t, func() bool {
		return !sched.IsRunning(string(scheduler.KindPruneDeleted))
	}, time.Second, time.Millisecond)

	assert.NoError(t, sched.Enqueue(context.Background(), job))
	sched.Shutdown(time.Second)
}

func TestScheduleRejectsMalformedExpression(t *testing.T) {
	sched := scheduler.New(discardLogger())
	err := sched.Schedule("not a cron expr", func() scheduler.Job {
		return scheduler.Job{Kind: scheduler.KindChangesSync}
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, scheduler.ErrAlreadyRunning))
}
