// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SyncState tracks, per family, the timestamps the changes reconciler and
// full_sweep need to decide their next window and skip-after-sweep behavior.
var SyncState = Table{
	Name: "sync_state",
	Columns: []string{
		"family", "last_successful_changes_sync", "last_successful_full_sweep",
	},
	PK: []string{"family"},
}

// JobRuns records one row per completed job execution, read back by the
// health endpoint's last-successful-run-per-kind report.
var JobRuns = Table{
	Name: "job_runs",
	Columns: []string{
		"id", "kind", "started_at", "finished_at", "succeeded", "error",
		"ids_enumerated", "ids_fetched", "ids_inserted", "ids_updated",
		"ids_deleted", "ids_errored",
	},
	PK: []string{"id"},
}
