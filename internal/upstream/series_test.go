// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeriesAlwaysProducesExactlyOneExternalIDsRow(t *testing.T) {
	full := buildSeries(seriesDTO{
		ID: 1399,
		ExternalIDs: externalIDsDTO{
			IMDBID: strPtr("tt0944947"),
			TVDBID: strPtr("121361"),
		},
	})
	empty := buildSeries(seriesDTO{ID: 1400})

	require.Equal(t, int64(1399), full.ExternalIDs.SeriesID)
	assert.Equal(t, "121361", *full.ExternalIDs.TVDBID)

	require.Equal(t, int64(1400), empty.ExternalIDs.SeriesID)
	assert.Nil(t, empty.ExternalIDs.IMDBID)
	assert.Nil(t, empty.ExternalIDs.TVDBID)
}

// episode-to-air rows are built only when the upstream payload has them, and
// each surrogate id on Series must line up with the row it was generated
// for: changes.upsertSeries writes these child rows before the series root
// row in the same transaction, so the ids can't drift apart.
func TestBuildSeriesEpisodeToAirOnlySetWhenPresent(t *testing.T) {
	withBoth := buildSeries(seriesDTO{
		ID:               1399,
		LastEpisodeToAir: &episodeToAirDTO{ID: 111, Name: "Finale"},
		NextEpisodeToAir: &episodeToAirDTO{ID: 112, Name: "Upcoming"},
	})
	require.NotNil(t, withBoth.Series.LastEpisodeToAirID)
	require.NotNil(t, withBoth.LastEpisodeToAir)
	assert.Equal(t, *withBoth.Series.LastEpisodeToAirID, withBoth.LastEpisodeToAir.SurrogateID)

	require.NotNil(t, withBoth.Series.NextEpisodeToAirID)
	require.NotNil(t, withBoth.NextEpisodeToAir)
	assert.Equal(t, *withBoth.Series.NextEpisodeToAirID, withBoth.NextEpisodeToAir.SurrogateID)

	ended := buildSeries(seriesDTO{ID: 1400})
	assert.Nil(t, ended.Series.LastEpisodeToAirID)
	assert.Nil(t, ended.LastEpisodeToAir)
	assert.Nil(t, ended.Series.NextEpisodeToAirID)
	assert.Nil(t, ended.NextEpisodeToAir)
}
