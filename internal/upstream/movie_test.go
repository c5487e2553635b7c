// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMovieAlwaysProducesExactlyOneExternalIDsRow(t *testing.T) {
	withAllFields := movieDTO{
		ID: 603,
		ExternalIDs: externalIDsDTO{
			IMDBID:      strPtr("tt0133093"),
			WikidataID:  strPtr("Q83495"),
			FacebookID:  strPtr("TheMatrixMovie"),
			InstagramID: strPtr("thematrixmovie"),
			TwitterID:   strPtr("thematrixmovie"),
		},
	}
	withNoFields := movieDTO{ID: 604}

	full := buildMovie(withAllFields)
	empty := buildMovie(withNoFields)

	require.Equal(t, int64(603), full.ExternalIDs.MovieID)
	assert.Equal(t, "tt0133093", *full.ExternalIDs.IMDBID)

	require.Equal(t, int64(604), empty.ExternalIDs.MovieID)
	assert.Nil(t, empty.ExternalIDs.IMDBID)
	assert.Nil(t, empty.ExternalIDs.WikidataID)
}

func TestBuildMovieSetsCollectionOnlyWhenPresent(t *testing.T) {
	withCollection := buildMovie(movieDTO{
		ID: 603,
		BelongsToCollection: &collectionDTO{
			ID: 2344, Name: "The Matrix Collection",
		},
	})
	require.NotNil(t, withCollection.Movie.BelongsToCollectionID)
	assert.Equal(t, int64(2344), *withCollection.Movie.BelongsToCollectionID)
	require.NotNil(t, withCollection.Collection)
	assert.Equal(t, "The Matrix Collection", withCollection.Collection.Name)

	withoutCollection := buildMovie(movieDTO{ID: 604})
	assert.Nil(t, withoutCollection.Movie.BelongsToCollectionID)
	assert.Nil(t, withoutCollection.Collection)
}

func TestBuildMovieReleaseDatesTreatEmptyStringsAsAbsent(t *testing.T) {
	dto := movieDTO{
		ID: 603,
		ReleaseDates: releaseDatesDTO{
			Results: []releaseCountryDTO{
				{
					ISO31661: "US",
					ReleaseDates: []releaseDTO{
						{Certification: "R", ISO6391: "en", Note: "", Type: 3},
						{Certification: "", ISO6391: "", Note: "", Type: 1},
					},
				},
			},
		},
	}

	built := buildMovie(dto)
	require.Len(t, built.ReleaseDates, 2)

	require.NotNil(t, built.ReleaseDates[0].Certification)
	assert.Equal(t, "R", *built.ReleaseDates[0].Certification)
	assert.Nil(t, built.ReleaseDates[0].Note)

	assert.Nil(t, built.ReleaseDates[1].Certification)
	assert.Nil(t, built.ReleaseDates[1].ISO6391)
	assert.Nil(t, built.ReleaseDates[1].Note)
}

func strPtr(s string) *string { return &s }
