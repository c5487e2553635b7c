// Copyright (c) 2026 TMDB-Service. All rights reserved.

package model

import "time"

// Collection is the belongs_to_collection dimension row; a movie's FK to it
// is nullable.
type Collection struct {
	ID           int64
	Name         string
	PosterPath   *string
	BackdropPath *string
}

func (c Collection) Values() []any {
	return []any{c.ID, c.Name, c.PosterPath, c.BackdropPath}
}

// Movie is the root row for the movie family.
type Movie struct {
	ID                     int64
	IMDBID                 *string
	Title                  string
	OriginalTitle          string
	OriginalLanguage       string
	Overview               *string
	Tagline                *string
	Status                 string
	ReleaseDate            *time.Time
	Runtime                *int
	Budget                 int64
	Revenue                int64
	Popularity             float64
	VoteAverage            float64
	VoteCount              int
	Adult                  bool
	Video                  bool
	Homepage               *string
	PosterPath             *string
	BackdropPath           *string
	BelongsToCollectionID  *int64
	UpdatedAt              time.Time
}

func (m Movie) Values() []any {
	return []any{
		m.ID, m.IMDBID, m.Title, m.OriginalTitle, m.OriginalLanguage,
		m.Overview, m.Tagline, m.Status, m.ReleaseDate, m.Runtime,
		m.Budget, m.Revenue, m.Popularity, m.VoteAverage, m.VoteCount,
		m.Adult, m.Video, m.Homepage, m.PosterPath, m.BackdropPath,
		m.BelongsToCollectionID, m.UpdatedAt,
	}
}

// MovieExternalIDs is emitted exactly once per movie id regardless of which
// upstream fields are present; all fields are nullable.
type MovieExternalIDs struct {
	MovieID     int64
	IMDBID      *string
	WikidataID  *string
	FacebookID  *string
	InstagramID *string
	TwitterID   *string
}

func (e MovieExternalIDs) Values() []any {
	return []any{e.MovieID, e.IMDBID, e.WikidataID, e.FacebookID, e.InstagramID, e.TwitterID}
}

// MovieBuild is the full set of row batches the normalizer produces for one
// upstream movie record.
type MovieBuild struct {
	Movie             Movie
	Collection        *Collection
	Genres            []Genre
	GenreAssocs       []GenreAssoc
	Companies         []Company
	CompanyAssocs     []CompanyAssoc
	Countries         []Country
	CountryAssocs     []CountryAssoc
	Languages         []Language
	LanguageAssocs    []LanguageAssoc
	AlternativeTitles []AlternativeTitle
	CastMembers       []CastMember
	CastAssocs        []CastAssoc
	ExternalIDs       MovieExternalIDs
	Keywords          []Keyword
	KeywordAssocs     []KeywordAssoc
	ReleaseDates      []ReleaseDate
	Videos            []Video
}
