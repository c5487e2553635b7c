// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// # Series family

var Series = Table{
	Name: "series",
	Columns: []string{
		"id", "imdb_id", "name", "original_name", "original_language",
		"overview", "tagline", "status", "type", "first_air_date", "last_air_date",
		"in_production", "number_of_episodes", "number_of_seasons",
		"popularity", "vote_average", "vote_count",
		"adult", "homepage", "poster_path", "backdrop_path",
		"last_episode_to_air_id", "next_episode_to_air_id", "updated_at",
	},
	PK: []string{"id"},
}
var StagingSeries = Staging(Series)
var OldSeries = Old(Series)

var SeriesGenres = Table{
	Name:    "series_genres",
	Columns: []string{"id", "name"},
	PK:      []string{"id"},
}
var StagingSeriesGenres = Staging(SeriesGenres)
var OldSeriesGenres = Old(SeriesGenres)

var SeriesGenresAssoc = Table{
	Name:    "series_genres_assoc",
	Columns: []string{"series_id", "genre_id"},
	PK:      []string{"series_id", "genre_id"},
}
var StagingSeriesGenresAssoc = Staging(SeriesGenresAssoc)
var OldSeriesGenresAssoc = Old(SeriesGenresAssoc)

var SeriesProductionCompanies = Table{
	Name:    "series_production_companies",
	Columns: []string{"id", "name", "logo_path", "origin_country"},
	PK:      []string{"id"},
}
var StagingSeriesProductionCompanies = Staging(SeriesProductionCompanies)
var OldSeriesProductionCompanies = Old(SeriesProductionCompanies)

var SeriesCompaniesAssoc = Table{
	Name:    "series_companies_assoc",
	Columns: []string{"series_id", "company_id"},
	PK:      []string{"series_id", "company_id"},
}
var StagingSeriesCompaniesAssoc = Staging(SeriesCompaniesAssoc)
var OldSeriesCompaniesAssoc = Old(SeriesCompaniesAssoc)

var SeriesProductionCountries = Table{
	Name:    "series_production_countries",
	Columns: []string{"iso_3166_1", "name"},
	PK:      []string{"iso_3166_1"},
}
var StagingSeriesProductionCountries = Staging(SeriesProductionCountries)
var OldSeriesProductionCountries = Old(SeriesProductionCountries)

var SeriesCountriesAssoc = Table{
	Name:    "series_countries_assoc",
	Columns: []string{"series_id", "iso_3166_1"},
	PK:      []string{"series_id", "iso_3166_1"},
}
var StagingSeriesCountriesAssoc = Staging(SeriesCountriesAssoc)
var OldSeriesCountriesAssoc = Old(SeriesCountriesAssoc)

var SeriesSpokenLanguages = Table{
	Name:    "series_spoken_languages",
	Columns: []string{"iso_639_1", "english_name", "name"},
	PK:      []string{"iso_639_1"},
}
var StagingSeriesSpokenLanguages = Staging(SeriesSpokenLanguages)
var OldSeriesSpokenLanguages = Old(SeriesSpokenLanguages)

var SeriesLanguagesAssoc = Table{
	Name:    "series_languages_assoc",
	Columns: []string{"series_id", "iso_639_1"},
	PK:      []string{"series_id", "iso_639_1"},
}
var StagingSeriesLanguagesAssoc = Staging(SeriesLanguagesAssoc)
var OldSeriesLanguagesAssoc = Old(SeriesLanguagesAssoc)

var SeriesAlternativeTitles = Table{
	Name:    "series_alternative_titles",
	Columns: []string{"id", "series_id", "iso_3166_1", "title", "type"},
	PK:      []string{"id"},
}
var StagingSeriesAlternativeTitles = Staging(SeriesAlternativeTitles)
var OldSeriesAlternativeTitles = Old(SeriesAlternativeTitles)

var SeriesCastMembers = Table{
	Name:    "series_cast_members",
	Columns: []string{"id", "name", "gender", "profile_path"},
	PK:      []string{"id"},
}
var StagingSeriesCastMembers = Staging(SeriesCastMembers)
var OldSeriesCastMembers = Old(SeriesCastMembers)

var SeriesCastAssoc = Table{
	Name:    "series_cast_assoc",
	Columns: []string{"series_id", "cast_member_id", "character", "cast_order"},
	PK:      []string{"series_id", "cast_member_id"},
}
var StagingSeriesCastAssoc = Staging(SeriesCastAssoc)
var OldSeriesCastAssoc = Old(SeriesCastAssoc)

var SeriesExternalIDs = Table{
	Name: "series_external_ids",
	Columns: []string{
		"series_id", "imdb_id", "wikidata_id", "facebook_id", "instagram_id", "twitter_id", "tvdb_id",
	},
	PK: []string{"series_id"},
}
var StagingSeriesExternalIDs = Staging(SeriesExternalIDs)
var OldSeriesExternalIDs = Old(SeriesExternalIDs)

var SeriesKeywords = Table{
	Name:    "series_keywords",
	Columns: []string{"id", "name"},
	PK:      []string{"id"},
}
var StagingSeriesKeywords = Staging(SeriesKeywords)
var OldSeriesKeywords = Old(SeriesKeywords)

var SeriesKeywordsAssoc = Table{
	Name:    "series_keywords_assoc",
	Columns: []string{"series_id", "keyword_id"},
	PK:      []string{"series_id", "keyword_id"},
}
var StagingSeriesKeywordsAssoc = Staging(SeriesKeywordsAssoc)
var OldSeriesKeywordsAssoc = Old(SeriesKeywordsAssoc)

var SeriesCreatedBy = Table{
	Name:    "series_created_by",
	Columns: []string{"id", "name", "gender", "profile_path"},
	PK:      []string{"id"},
}
var StagingSeriesCreatedBy = Staging(SeriesCreatedBy)
var OldSeriesCreatedBy = Old(SeriesCreatedBy)

var SeriesCreatedByAssoc = Table{
	Name:    "series_created_by_assoc",
	Columns: []string{"series_id", "creator_id"},
	PK:      []string{"series_id", "creator_id"},
}
var StagingSeriesCreatedByAssoc = Staging(SeriesCreatedByAssoc)
var OldSeriesCreatedByAssoc = Old(SeriesCreatedByAssoc)

var SeriesNetworks = Table{
	Name:    "series_networks",
	Columns: []string{"id", "name", "logo_path", "origin_country"},
	PK:      []string{"id"},
}
var StagingSeriesNetworks = Staging(SeriesNetworks)
var OldSeriesNetworks = Old(SeriesNetworks)

var SeriesNetworksAssoc = Table{
	Name:    "series_networks_assoc",
	Columns: []string{"series_id", "network_id"},
	PK:      []string{"series_id", "network_id"},
}
var StagingSeriesNetworksAssoc = Staging(SeriesNetworksAssoc)
var OldSeriesNetworksAssoc = Old(SeriesNetworksAssoc)

var SeriesSeasons = Table{
	Name: "series_seasons",
	Columns: []string{
		"id", "series_id", "season_number", "name", "overview",
		"air_date", "episode_count", "poster_path", "vote_average",
	},
	PK: []string{"id"},
}
var StagingSeriesSeasons = Staging(SeriesSeasons)
var OldSeriesSeasons = Old(SeriesSeasons)

var SeriesLastEpisodeToAir = Table{
	Name: "series_last_episode_to_air",
	Columns: []string{
		"id", "series_id", "name", "overview", "season_number", "episode_number",
		"air_date", "runtime", "still_path", "vote_average",
	},
	PK: []string{"id"},
}
var StagingSeriesLastEpisodeToAir = Staging(SeriesLastEpisodeToAir)
var OldSeriesLastEpisodeToAir = Old(SeriesLastEpisodeToAir)

var SeriesNextEpisodeToAir = Table{
	Name: "series_next_episode_to_air",
	Columns: []string{
		"id", "series_id", "name", "overview", "season_number", "episode_number",
		"air_date", "runtime", "still_path", "vote_average",
	},
	PK: []string{"id"},
}
var StagingSeriesNextEpisodeToAir = Staging(SeriesNextEpisodeToAir)
var OldSeriesNextEpisodeToAir = Old(SeriesNextEpisodeToAir)

// SeriesTables lists every live series-family table in the order a
// full_sweep build and swap should consider them: dimensions, episode
// pointers, and the root before the associations that reference them.
var SeriesTables = []Table{
	SeriesLastEpisodeToAir,
	SeriesNextEpisodeToAir,
	Series,
	SeriesGenres, SeriesGenresAssoc,
	SeriesProductionCompanies, SeriesCompaniesAssoc,
	SeriesProductionCountries, SeriesCountriesAssoc,
	SeriesSpokenLanguages, SeriesLanguagesAssoc,
	SeriesAlternativeTitles,
	SeriesCastMembers, SeriesCastAssoc,
	SeriesExternalIDs,
	SeriesKeywords, SeriesKeywordsAssoc,
	SeriesCreatedBy, SeriesCreatedByAssoc,
	SeriesNetworks, SeriesNetworksAssoc,
	SeriesSeasons,
}
