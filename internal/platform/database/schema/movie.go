// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// # Movie family

var Movie = Table{
	Name: "movie",
	Columns: []string{
		"id", "imdb_id", "title", "original_title", "original_language",
		"overview", "tagline", "status", "release_date", "runtime",
		"budget", "revenue", "popularity", "vote_average", "vote_count",
		"adult", "video", "homepage", "poster_path", "backdrop_path",
		"belongs_to_collection_id", "updated_at",
	},
	PK: []string{"id"},
}
var StagingMovie = Staging(Movie)
var OldMovie = Old(Movie)

var MovieCollections = Table{
	Name:    "movie_collections",
	Columns: []string{"id", "name", "poster_path", "backdrop_path"},
	PK:      []string{"id"},
}
var StagingMovieCollections = Staging(MovieCollections)
var OldMovieCollections = Old(MovieCollections)

var MovieGenres = Table{
	Name:    "movie_genres",
	Columns: []string{"id", "name"},
	PK:      []string{"id"},
}
var StagingMovieGenres = Staging(MovieGenres)
var OldMovieGenres = Old(MovieGenres)

var MovieGenresAssoc = Table{
	Name:    "movie_genres_assoc",
	Columns: []string{"movie_id", "genre_id"},
	PK:      []string{"movie_id", "genre_id"},
}
var StagingMovieGenresAssoc = Staging(MovieGenresAssoc)
var OldMovieGenresAssoc = Old(MovieGenresAssoc)

var MovieProductionCompanies = Table{
	Name:    "movie_production_companies",
	Columns: []string{"id", "name", "logo_path", "origin_country"},
	PK:      []string{"id"},
}
var StagingMovieProductionCompanies = Staging(MovieProductionCompanies)
var OldMovieProductionCompanies = Old(MovieProductionCompanies)

var MovieCompaniesAssoc = Table{
	Name:    "movie_companies_assoc",
	Columns: []string{"movie_id", "company_id"},
	PK:      []string{"movie_id", "company_id"},
}
var StagingMovieCompaniesAssoc = Staging(MovieCompaniesAssoc)
var OldMovieCompaniesAssoc = Old(MovieCompaniesAssoc)

var MovieProductionCountries = Table{
	Name:    "movie_production_countries",
	Columns: []string{"iso_3166_1", "name"},
	PK:      []string{"iso_3166_1"},
}
var StagingMovieProductionCountries = Staging(MovieProductionCountries)
var OldMovieProductionCountries = Old(MovieProductionCountries)

var MovieCountriesAssoc = Table{
	Name:    "movie_countries_assoc",
	Columns: []string{"movie_id", "iso_3166_1"},
	PK:      []string{"movie_id", "iso_3166_1"},
}
var StagingMovieCountriesAssoc = Staging(MovieCountriesAssoc)
var OldMovieCountriesAssoc = Old(MovieCountriesAssoc)

var MovieSpokenLanguages = Table{
	Name:    "movie_spoken_languages",
	Columns: []string{"iso_639_1", "english_name", "name"},
	PK:      []string{"iso_639_1"},
}
var StagingMovieSpokenLanguages = Staging(MovieSpokenLanguages)
var OldMovieSpokenLanguages = Old(MovieSpokenLanguages)

var MovieLanguagesAssoc = Table{
	Name:    "movie_languages_assoc",
	Columns: []string{"movie_id", "iso_639_1"},
	PK:      []string{"movie_id", "iso_639_1"},
}
var StagingMovieLanguagesAssoc = Staging(MovieLanguagesAssoc)
var OldMovieLanguagesAssoc = Old(MovieLanguagesAssoc)

var MovieAlternativeTitles = Table{
	Name:    "movie_alternative_titles",
	Columns: []string{"id", "movie_id", "iso_3166_1", "title", "type"},
	PK:      []string{"id"},
}
var StagingMovieAlternativeTitles = Staging(MovieAlternativeTitles)
var OldMovieAlternativeTitles = Old(MovieAlternativeTitles)

var MovieCastMembers = Table{
	Name:    "movie_cast_members",
	Columns: []string{"id", "name", "gender", "profile_path"},
	PK:      []string{"id"},
}
var StagingMovieCastMembers = Staging(MovieCastMembers)
var OldMovieCastMembers = Old(MovieCastMembers)

var MovieCastAssoc = Table{
	Name:    "movie_cast_assoc",
	Columns: []string{"movie_id", "cast_member_id", "character", "cast_order"},
	PK:      []string{"movie_id", "cast_member_id"},
}
var StagingMovieCastAssoc = Staging(MovieCastAssoc)
var OldMovieCastAssoc = Old(MovieCastAssoc)

var MovieExternalIDs = Table{
	Name: "movie_external_ids",
	Columns: []string{
		"movie_id", "imdb_id", "wikidata_id", "facebook_id", "instagram_id", "twitter_id",
	},
	PK: []string{"movie_id"},
}
var StagingMovieExternalIDs = Staging(MovieExternalIDs)
var OldMovieExternalIDs = Old(MovieExternalIDs)

var MovieKeywords = Table{
	Name:    "movie_keywords",
	Columns: []string{"id", "name"},
	PK:      []string{"id"},
}
var StagingMovieKeywords = Staging(MovieKeywords)
var OldMovieKeywords = Old(MovieKeywords)

var MovieKeywordsAssoc = Table{
	Name:    "movie_keywords_assoc",
	Columns: []string{"movie_id", "keyword_id"},
	PK:      []string{"movie_id", "keyword_id"},
}
var StagingMovieKeywordsAssoc = Staging(MovieKeywordsAssoc)
var OldMovieKeywordsAssoc = Old(MovieKeywordsAssoc)

var MovieReleaseDates = Table{
	Name: "movie_release_dates",
	Columns: []string{
		"id", "movie_id", "iso_3166_1", "certification", "iso_639_1",
		"note", "release_date", "type",
	},
	PK: []string{"id"},
}
var StagingMovieReleaseDates = Staging(MovieReleaseDates)
var OldMovieReleaseDates = Old(MovieReleaseDates)

var MovieVideos = Table{
	Name: "movie_videos",
	Columns: []string{
		"id", "movie_id", "name", "site", "key", "type", "official", "published_at",
	},
	PK: []string{"id"},
}
var StagingMovieVideos = Staging(MovieVideos)
var OldMovieVideos = Old(MovieVideos)

// MovieTables lists every live movie-family table in the order a full_sweep
// build and swap should consider them: dimensions and roots before the
// associations that reference them.
var MovieTables = []Table{
	MovieCollections,
	Movie,
	MovieGenres, MovieGenresAssoc,
	MovieProductionCompanies, MovieCompaniesAssoc,
	MovieProductionCountries, MovieCountriesAssoc,
	MovieSpokenLanguages, MovieLanguagesAssoc,
	MovieAlternativeTitles,
	MovieCastMembers, MovieCastAssoc,
	MovieExternalIDs,
	MovieKeywords, MovieKeywordsAssoc,
	MovieReleaseDates,
	MovieVideos,
}
