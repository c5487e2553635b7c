// Copyright (c) 2026 TMDB-Service. All rights reserved.

package changes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jessielw/tmdb-service/internal/changes"
)

func TestWindowNarrowWhenRecentSync(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	lastSync := now.Add(-12 * time.Hour)

	start, end := changes.Window(now, lastSync, true)

	assert.Equal(t, now.Add(-24*time.Hour), start)
	assert.Equal(t, now, end)
}

func TestWindowFromLastSyncWhenWithinTwoWeeks(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	lastSync := now.Add(-5 * 24 * time.Hour)

	start, end := changes.Window(now, lastSync, true)

	assert.Equal(t, lastSync, start)
	assert.Equal(t, now, end)
}

func TestWindowCappedAtFourteenDays(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	lastSync := now.Add(-30 * 24 * time.Hour)

	start, end := changes.Window(now, lastSync, true)

	assert.Equal(t, now.Add(-14*24*time.Hour), start)
	assert.Equal(t, now, end)
}

func TestWindowUnsetUsesFullLookback(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	start, end := changes.Window(now, time.Time{}, false)

	assert.Equal(t, now.Add(-14*24*time.Hour), start)
	assert.Equal(t, now, end)
}

func TestSkipAfterSweepWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, changes.SkipAfterSweep(now, now.Add(-1*time.Hour), true))
	assert.False(t, changes.SkipAfterSweep(now, now.Add(-25*time.Hour), true))
	assert.False(t, changes.SkipAfterSweep(now, time.Time{}, false))
}
