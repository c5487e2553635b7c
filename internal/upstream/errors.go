// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import "errors"

// ErrNotFound signals a 404 from upstream. Callers treat this as a data
// signal rather than a failure: a deleted record during changes_sync, or a
// skip during add/missing flows.
var ErrNotFound = errors.New("upstream: record not found")

// ErrUnauthorized signals a 401/403 from upstream, fatal to the job.
var ErrUnauthorized = errors.New("upstream: authentication failed")
