// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package changes implements the incremental /changes reconciler: the
adaptive look-back window (§4.6) and the per-record upsert-into-live
pipeline it drives.
*/
package changes

import (
	"time"

	"github.com/jessielw/tmdb-service/internal/platform/constants"
)

// Window computes the adaptive [start, end] query window for /changes.
//
//   - Δ = now − lastSync ≤ 24h: [now−24h, now]
//   - otherwise: [max(now−14d, lastSync), now], capped at 14 days of
//     look-back
//
// hasSynced false (no prior successful sync) is treated the same as a Δ
// over 14 days: the full 14-day look-back is used.
func Window(now time.Time, lastSync time.Time, hasSynced bool) (start, end time.Time) {
	end = now
	if !hasSynced {
		return now.Add(-constants.ChangesMaxLookback), end
	}

	delta := now.Sub(lastSync)
	if delta <= constants.ChangesNarrowWindow {
		return now.Add(-constants.ChangesNarrowWindow), end
	}

	maxLookback := now.Add(-constants.ChangesMaxLookback)
	if lastSync.After(maxLookback) {
		return lastSync, end
	}
	return maxLookback, end
}

// SkipAfterSweep reports whether a full_sweep for the family completed
// recently enough that changes_sync should no-op (while still advancing
// last_successful_changes_sync).
func SkipAfterSweep(now time.Time, lastFullSweep time.Time, hasSweepRun bool) bool {
	if !hasSweepRun {
		return false
	}
	return now.Sub(lastFullSweep) <= constants.SkipAfterSweepWindow
}
