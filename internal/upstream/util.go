// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"time"

	"github.com/jessielw/tmdb-service/pkg/pointer"
)

// parseDate parses an upstream "YYYY-MM-DD" date string, treating empty or
// unparsable values as absent rather than failing the whole record — the
// normalizer's tolerance rule extends to every optional date field, not
// just external ids.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// nowUTC is the single place Movie/Series rows stamp their updated_at.
func nowUTC() time.Time {
	return time.Now().UTC()
}

// nonEmpty turns an upstream empty-string sentinel into a nil column value,
// matching the normalizer's rule that "" means absent, not a literal blank.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return pointer.To(s)
}
