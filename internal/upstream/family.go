// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"context"
	"fmt"
)

// Families enumerates the two record families the mirror tracks.
var Families = []string{"movie", "series"}

// FetchRecord dispatches to FetchMovie or FetchSeries by family, returning
// either a *model.MovieBuild or *model.SeriesBuild as `any`. Callers that
// already know the family should prefer the typed method; this exists for
// code (changes reconciler, missing/prune passes, scheduler) that is
// parameterized over family.
func (c *Client) FetchRecord(ctx context.Context, family string, id int64) (any, error) {
	switch family {
	case "movie":
		return c.FetchMovie(ctx, id)
	case "series":
		return c.FetchSeries(ctx, id)
	default:
		return nil, fmt.Errorf("upstream: unknown family %q", family)
	}
}
