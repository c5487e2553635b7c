// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"context"
	"fmt"

	"github.com/jessielw/tmdb-service/pkg/uuidv7"

	"github.com/jessielw/tmdb-service/internal/model"
)

// FetchSeries pulls the aggregate series record and flattens it into a
// [model.SeriesBuild]. Series use content_ratings in place of movie's
// release_dates for the same certification shape.
func (c *Client) FetchSeries(ctx context.Context, id int64) (*model.SeriesBuild, error) {
	var dto seriesDTO
	err := c.doGET(ctx, fmt.Sprintf("/tv/%d", id), map[string]string{
		"append_to_response": "credits,external_ids,keywords,alternative_titles,videos,content_ratings",
	}, &dto)
	if err != nil {
		return nil, err
	}
	return buildSeries(dto), nil
}

func buildSeries(dto seriesDTO) *model.SeriesBuild {
	b := &model.SeriesBuild{
		Series: model.Series{
			ID:               dto.ID,
			IMDBID:           dto.ExternalIDs.IMDBID,
			Name:             dto.Name,
			OriginalName:     dto.OriginalName,
			OriginalLanguage: dto.OriginalLanguage,
			Overview:         dto.Overview,
			Tagline:          dto.Tagline,
			Status:           dto.Status,
			Type:             dto.Type,
			FirstAirDate:     parseDate(dto.FirstAirDate),
			LastAirDate:      parseDate(dto.LastAirDate),
			InProduction:     dto.InProduction,
			NumberOfEpisodes: dto.NumberOfEpisodes,
			NumberOfSeasons:  dto.NumberOfSeasons,
			Popularity:       dto.Popularity,
			VoteAverage:      dto.VoteAverage,
			VoteCount:        dto.VoteCount,
			Adult:            dto.Adult,
			Homepage:         dto.Homepage,
			PosterPath:       dto.PosterPath,
			BackdropPath:     dto.BackdropPath,
			UpdatedAt:        nowUTC(),
		},
		ExternalIDs: model.SeriesExternalIDs{
			SeriesID:    dto.ID,
			IMDBID:      dto.ExternalIDs.IMDBID,
			WikidataID:  dto.ExternalIDs.WikidataID,
			FacebookID:  dto.ExternalIDs.FacebookID,
			InstagramID: dto.ExternalIDs.InstagramID,
			TwitterID:   dto.ExternalIDs.TwitterID,
			TVDBID:      dto.ExternalIDs.TVDBID,
		},
	}

	if dto.LastEpisodeToAir != nil {
		surrogate := uuidv7.New()
		b.Series.LastEpisodeToAirID = &surrogate
		b.LastEpisodeToAir = episodeToAirRow(surrogate, dto.ID, dto.LastEpisodeToAir)
	}
	if dto.NextEpisodeToAir != nil {
		surrogate := uuidv7.New()
		b.Series.NextEpisodeToAirID = &surrogate
		b.NextEpisodeToAir = episodeToAirRow(surrogate, dto.ID, dto.NextEpisodeToAir)
	}

	for _, g := range dto.Genres {
		b.Genres = append(b.Genres, model.Genre{ID: g.ID, Name: g.Name})
		b.GenreAssocs = append(b.GenreAssocs, model.GenreAssoc{RootID: dto.ID, GenreID: g.ID})
	}
	for _, co := range dto.ProductionCompanies {
		b.Companies = append(b.Companies, model.Company{
			ID: co.ID, Name: co.Name, LogoPath: co.LogoPath, OriginCountry: co.OriginCountry,
		})
		b.CompanyAssocs = append(b.CompanyAssocs, model.CompanyAssoc{RootID: dto.ID, CompanyID: co.ID})
	}
	for _, ct := range dto.ProductionCountries {
		b.Countries = append(b.Countries, model.Country{ISO31661: ct.ISO31661, Name: ct.Name})
		b.CountryAssocs = append(b.CountryAssocs, model.CountryAssoc{RootID: dto.ID, ISO31661: ct.ISO31661})
	}
	for _, l := range dto.SpokenLanguages {
		b.Languages = append(b.Languages, model.Language{
			ISO6391: l.ISO6391, EnglishName: l.EnglishName, Name: l.Name,
		})
		b.LanguageAssocs = append(b.LanguageAssocs, model.LanguageAssoc{RootID: dto.ID, ISO6391: l.ISO6391})
	}
	for i, cm := range dto.Credits.Cast {
		b.CastMembers = append(b.CastMembers, model.CastMember{
			ID: cm.ID, Name: cm.Name, Gender: cm.Gender, ProfilePath: cm.ProfilePath,
		})
		order := cm.Order
		if order == 0 {
			order = i
		}
		b.CastAssocs = append(b.CastAssocs, model.CastAssoc{
			RootID: dto.ID, CastMemberID: cm.ID, Character: cm.Character, CastOrder: order,
		})
	}
	for _, k := range dto.Keywords.all() {
		b.Keywords = append(b.Keywords, model.Keyword{ID: k.ID, Name: k.Name})
		b.KeywordAssocs = append(b.KeywordAssocs, model.KeywordAssoc{RootID: dto.ID, KeywordID: k.ID})
	}
	for _, t := range dto.AlternativeTitles.all() {
		b.AlternativeTitles = append(b.AlternativeTitles, model.AlternativeTitle{
			SurrogateID: uuidv7.New(), RootID: dto.ID,
			ISO31661: t.ISO31661, Title: t.Title, Type: t.Type,
		})
	}
	// dto.Videos is decoded but unused: series_videos has no table in the
	// persisted-state list (§6 lists movie_videos only for the movie family).
	for _, c := range dto.CreatedBy {
		b.Creators = append(b.Creators, model.Creator{
			ID: c.ID, Name: c.Name, Gender: c.Gender, ProfilePath: c.ProfilePath,
		})
		b.CreatorAssocs = append(b.CreatorAssocs, model.CreatorAssoc{SeriesID: dto.ID, CreatorID: c.ID})
	}
	for _, n := range dto.Networks {
		b.Networks = append(b.Networks, model.Network{
			ID: n.ID, Name: n.Name, LogoPath: n.LogoPath, OriginCountry: n.OriginCountry,
		})
		b.NetworkAssocs = append(b.NetworkAssocs, model.NetworkAssoc{SeriesID: dto.ID, NetworkID: n.ID})
	}
	for _, s := range dto.Seasons {
		b.Seasons = append(b.Seasons, model.Season{
			SurrogateID: uuidv7.New(), SeriesID: dto.ID, SeasonNumber: s.SeasonNumber,
			Name: s.Name, Overview: s.Overview, AirDate: parseDate(s.AirDate),
			EpisodeCount: s.EpisodeCount, PosterPath: s.PosterPath, VoteAverage: s.VoteAverage,
		})
	}

	return b
}

func episodeToAirRow(surrogate string, seriesID int64, dto *episodeToAirDTO) *model.EpisodeToAir {
	return &model.EpisodeToAir{
		SurrogateID: surrogate, SeriesID: seriesID, Name: dto.Name, Overview: dto.Overview,
		SeasonNumber: dto.SeasonNumber, EpisodeNumber: dto.EpisodeNumber,
		AirDate: parseDate(dto.AirDate), Runtime: dto.Runtime, StillPath: dto.StillPath,
		VoteAverage: dto.VoteAverage,
	}
}
