// Copyright (c) 2026 TMDB-Service. All rights reserved.

package model

import "time"

// Series is the root row for the series family.
type Series struct {
	ID                   int64
	IMDBID               *string
	Name                 string
	OriginalName         string
	OriginalLanguage     string
	Overview             *string
	Tagline              *string
	Status               string
	Type                 string
	FirstAirDate         *time.Time
	LastAirDate          *time.Time
	InProduction         bool
	NumberOfEpisodes     int
	NumberOfSeasons      int
	Popularity           float64
	VoteAverage          float64
	VoteCount            int
	Adult                bool
	Homepage             *string
	PosterPath           *string
	BackdropPath         *string
	LastEpisodeToAirID   *string
	NextEpisodeToAirID   *string
	UpdatedAt            time.Time
}

func (s Series) Values() []any {
	return []any{
		s.ID, s.IMDBID, s.Name, s.OriginalName, s.OriginalLanguage,
		s.Overview, s.Tagline, s.Status, s.Type, s.FirstAirDate, s.LastAirDate,
		s.InProduction, s.NumberOfEpisodes, s.NumberOfSeasons,
		s.Popularity, s.VoteAverage, s.VoteCount,
		s.Adult, s.Homepage, s.PosterPath, s.BackdropPath,
		s.LastEpisodeToAirID, s.NextEpisodeToAirID, s.UpdatedAt,
	}
}

// Creator is the "created by" dimension row.
type Creator struct {
	ID          int64
	Name        string
	Gender      int
	ProfilePath *string
}

func (c Creator) Values() []any { return []any{c.ID, c.Name, c.Gender, c.ProfilePath} }

// CreatorAssoc links a series id to a creator id.
type CreatorAssoc struct {
	SeriesID  int64
	CreatorID int64
}

func (a CreatorAssoc) Values() []any { return []any{a.SeriesID, a.CreatorID} }

// Network is the broadcaster dimension row.
type Network struct {
	ID            int64
	Name          string
	LogoPath      *string
	OriginCountry string
}

func (n Network) Values() []any {
	return []any{n.ID, n.Name, n.LogoPath, n.OriginCountry}
}

// NetworkAssoc links a series id to a network id.
type NetworkAssoc struct {
	SeriesID  int64
	NetworkID int64
}

func (a NetworkAssoc) Values() []any { return []any{a.SeriesID, a.NetworkID} }

// Season is a 1:N child of series.
type Season struct {
	SurrogateID  string
	SeriesID     int64
	SeasonNumber int
	Name         string
	Overview     *string
	AirDate      *time.Time
	EpisodeCount int
	PosterPath   *string
	VoteAverage  float64
}

func (s Season) Values() []any {
	return []any{
		s.SurrogateID, s.SeriesID, s.SeasonNumber, s.Name, s.Overview,
		s.AirDate, s.EpisodeCount, s.PosterPath, s.VoteAverage,
	}
}

// EpisodeToAir backs both series_last_episode_to_air and
// series_next_episode_to_air; which table it targets is a caller decision.
type EpisodeToAir struct {
	SurrogateID   string
	SeriesID      int64
	Name          string
	Overview      *string
	SeasonNumber  int
	EpisodeNumber int
	AirDate       *time.Time
	Runtime       *int
	StillPath     *string
	VoteAverage   float64
}

func (e EpisodeToAir) Values() []any {
	return []any{
		e.SurrogateID, e.SeriesID, e.Name, e.Overview, e.SeasonNumber, e.EpisodeNumber,
		e.AirDate, e.Runtime, e.StillPath, e.VoteAverage,
	}
}

// SeriesExternalIDs mirrors MovieExternalIDs with the addition of tvdb_id.
type SeriesExternalIDs struct {
	SeriesID    int64
	IMDBID      *string
	WikidataID  *string
	FacebookID  *string
	InstagramID *string
	TwitterID   *string
	TVDBID      *string
}

func (e SeriesExternalIDs) Values() []any {
	return []any{
		e.SeriesID, e.IMDBID, e.WikidataID, e.FacebookID, e.InstagramID, e.TwitterID, e.TVDBID,
	}
}

// SeriesBuild is the full set of row batches the normalizer produces for one
// upstream series record.
type SeriesBuild struct {
	Series            Series
	LastEpisodeToAir  *EpisodeToAir
	NextEpisodeToAir  *EpisodeToAir
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
	ExternalIDs       SeriesExternalIDs
	Keywords          []Keyword
	KeywordAssocs     []KeywordAssoc
	Creators          []Creator
	CreatorAssocs     []CreatorAssoc
	Networks          []Network
	NetworkAssocs     []NetworkAssoc
	Seasons           []Season
}
