// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/jessielw/tmdb-service/pkg/slice"
)

func changesFamilyPath(family string) (string, error) {
	switch family {
	case "movie":
		return "movie", nil
	case "series":
		return "tv", nil
	default:
		return "", fmt.Errorf("upstream: unknown family %q", family)
	}
}

// FetchChangedIDs paginates /changes for [start, end] and returns the
// deduplicated set of changed ids. Pages are fetched in upstream order; this
// does not itself distinguish alive from deleted ids — callers probe each id
// with a record fetch to learn which.
func (c *Client) FetchChangedIDs(ctx context.Context, family string, start, end time.Time) ([]int64, error) {
	segment, err := changesFamilyPath(family)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	var ids []int64
	page := 1
	for {
		var dto changesDTO
		err := c.doGET(ctx, fmt.Sprintf("/%s/changes", segment), map[string]string{
			"start_date": start.Format("2006-01-02"),
			"end_date":   end.Format("2006-01-02"),
			"page":       fmt.Sprintf("%d", page),
		}, &dto)
		if err != nil {
			return nil, err
		}
		fresh := slice.Filter(dto.Results, func(item changedItemDTO) bool {
			if _, dup := seen[item.ID]; dup {
				return false
			}
			seen[item.ID] = struct{}{}
			return true
		})
		ids = append(ids, slice.Map(fresh, func(item changedItemDTO) int64 { return item.ID })...)
		if dto.TotalPages == 0 || page >= dto.TotalPages {
			break
		}
		page++
	}
	return ids, nil
}
