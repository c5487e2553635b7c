// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

// These mirror the upstream JSON contract (§4.2), aggregated via
// append_to_response=credits,external_ids,keywords,alternative_titles,videos,release_dates|content_ratings.
// Field shapes follow the TMDB response conventions observed across the
// retrieved example clients (godver3-strmr's tmdb_client.go in particular):
// unknown fields are ignored by the decoder, nulls become Go zero values or
// nil pointers.

type genreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type companyDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

type countryDTO struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

type languageDTO struct {
	ISO6391     string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

type collectionDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
}

type castMemberDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Gender      int     `json:"gender"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	ProfilePath *string `json:"profile_path"`
}

type creditsDTO struct {
	Cast []castMemberDTO `json:"cast"`
}

type externalIDsDTO struct {
	IMDBID      *string `json:"imdb_id"`
	WikidataID  *string `json:"wikidata_id"`
	FacebookID  *string `json:"facebook_id"`
	InstagramID *string `json:"instagram_id"`
	TwitterID   *string `json:"twitter_id"`
	TVDBID      *string `json:"tvdb_id"`
}

type keywordDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type keywordsDTO struct {
	// Movies use "keywords", series use "results" for the same shape.
	Keywords []keywordDTO `json:"keywords"`
	Results  []keywordDTO `json:"results"`
}

func (k keywordsDTO) all() []keywordDTO {
	if len(k.Keywords) > 0 {
		return k.Keywords
	}
	return k.Results
}

type alternativeTitleDTO struct {
	ISO31661 string `json:"iso_3166_1"`
	Title    string `json:"title"`
	Type     string `json:"type"`
}

type alternativeTitlesDTO struct {
	Titles  []alternativeTitleDTO `json:"titles"`
	Results []alternativeTitleDTO `json:"results"`
}

func (a alternativeTitlesDTO) all() []alternativeTitleDTO {
	if len(a.Titles) > 0 {
		return a.Titles
	}
	return a.Results
}

type videoDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Site        string  `json:"site"`
	Key         string  `json:"key"`
	Type        string  `json:"type"`
	Official    bool    `json:"official"`
	PublishedAt *string `json:"published_at"`
}

type videosDTO struct {
	Results []videoDTO `json:"results"`
}

type releaseDTO struct {
	Certification string  `json:"certification"`
	ISO6391       string  `json:"iso_639_1"`
	Note          string  `json:"note"`
	ReleaseDate   *string `json:"release_date"`
	Type          int     `json:"type"`
}

type releaseCountryDTO struct {
	ISO31661     string       `json:"iso_3166_1"`
	ReleaseDates []releaseDTO `json:"release_dates"`
}

type releaseDatesDTO struct {
	Results []releaseCountryDTO `json:"results"`
}

type movieDTO struct {
	ID                  int64                `json:"id"`
	IMDBID              *string              `json:"imdb_id"`
	Title               string               `json:"title"`
	OriginalTitle       string               `json:"original_title"`
	OriginalLanguage    string               `json:"original_language"`
	Overview            *string              `json:"overview"`
	Tagline             *string              `json:"tagline"`
	Status              string               `json:"status"`
	ReleaseDate         *string              `json:"release_date"`
	Runtime             *int                 `json:"runtime"`
	Budget              int64                `json:"budget"`
	Revenue             int64                `json:"revenue"`
	Popularity          float64              `json:"popularity"`
	VoteAverage         float64              `json:"vote_average"`
	VoteCount           int                  `json:"vote_count"`
	Adult               bool                 `json:"adult"`
	Video               bool                 `json:"video"`
	Homepage            *string              `json:"homepage"`
	PosterPath          *string              `json:"poster_path"`
	BackdropPath        *string              `json:"backdrop_path"`
	Genres              []genreDTO           `json:"genres"`
	ProductionCompanies []companyDTO         `json:"production_companies"`
	ProductionCountries []countryDTO         `json:"production_countries"`
	SpokenLanguages     []languageDTO        `json:"spoken_languages"`
	BelongsToCollection *collectionDTO       `json:"belongs_to_collection"`
	Credits             creditsDTO           `json:"credits"`
	ExternalIDs         externalIDsDTO       `json:"external_ids"`
	Keywords            keywordsDTO          `json:"keywords"`
	AlternativeTitles   alternativeTitlesDTO `json:"alternative_titles"`
	Videos              videosDTO            `json:"videos"`
	ReleaseDates        releaseDatesDTO      `json:"release_dates"`
}

type episodeToAirDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Overview      *string `json:"overview"`
	SeasonNumber  int     `json:"season_number"`
	EpisodeNumber int     `json:"episode_number"`
	AirDate       *string `json:"air_date"`
	Runtime       *int    `json:"runtime"`
	StillPath     *string `json:"still_path"`
	VoteAverage   float64 `json:"vote_average"`
}

type seasonDTO struct {
	ID           int64   `json:"id"`
	SeasonNumber int     `json:"season_number"`
	Name         string  `json:"name"`
	Overview     *string `json:"overview"`
	AirDate      *string `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	PosterPath   *string `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}

type creatorDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Gender      int     `json:"gender"`
	ProfilePath *string `json:"profile_path"`
}

type networkDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

type seriesDTO struct {
	ID                  int64                `json:"id"`
	Name                string               `json:"name"`
	OriginalName        string               `json:"original_name"`
	OriginalLanguage    string               `json:"original_language"`
	Overview            *string              `json:"overview"`
	Tagline             *string              `json:"tagline"`
	Status              string               `json:"status"`
	Type                string               `json:"type"`
	FirstAirDate        *string              `json:"first_air_date"`
	LastAirDate         *string              `json:"last_air_date"`
	InProduction        bool                 `json:"in_production"`
	NumberOfEpisodes    int                  `json:"number_of_episodes"`
	NumberOfSeasons     int                  `json:"number_of_seasons"`
	Popularity          float64              `json:"popularity"`
	VoteAverage         float64              `json:"vote_average"`
	VoteCount           int                  `json:"vote_count"`
	Adult               bool                 `json:"adult"`
	Homepage            *string              `json:"homepage"`
	PosterPath          *string              `json:"poster_path"`
	BackdropPath        *string              `json:"backdrop_path"`
	LastEpisodeToAir    *episodeToAirDTO     `json:"last_episode_to_air"`
	NextEpisodeToAir    *episodeToAirDTO     `json:"next_episode_to_air"`
	Seasons             []seasonDTO          `json:"seasons"`
	Genres              []genreDTO           `json:"genres"`
	ProductionCompanies []companyDTO         `json:"production_companies"`
	ProductionCountries []countryDTO         `json:"production_countries"`
	SpokenLanguages     []languageDTO        `json:"spoken_languages"`
	CreatedBy           []creatorDTO         `json:"created_by"`
	Networks            []networkDTO         `json:"networks"`
	Credits             creditsDTO           `json:"credits"`
	ExternalIDs         externalIDsDTO       `json:"external_ids"`
	Keywords            keywordsDTO          `json:"keywords"`
	AlternativeTitles   alternativeTitlesDTO `json:"alternative_titles"`
	Videos              videosDTO            `json:"videos"`
	ContentRatings      releaseDatesDTO      `json:"content_ratings"`
}

// exportLine is one line of the daily gzipped NDJSON id-export file.
type exportLine struct {
	ID int64 `json:"id"`
}

// changedItemDTO is one entry of a /changes page.
type changedItemDTO struct {
	ID int64 `json:"id"`
}

type changesDTO struct {
	Results    []changedItemDTO `json:"results"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}
