// Copyright (c) 2026 TMDB-Service. All rights reserved.

package upstream

import (
	"context"
	"fmt"

	"github.com/jessielw/tmdb-service/pkg/uuidv7"

	"github.com/jessielw/tmdb-service/internal/model"
)

// FetchMovie pulls the aggregate movie record (details + credits +
// external_ids + keywords + alternative_titles + videos + release_dates)
// and flattens it into a [model.MovieBuild].
func (c *Client) FetchMovie(ctx context.Context, id int64) (*model.MovieBuild, error) {
	var dto movieDTO
	err := c.doGET(ctx, fmt.Sprintf("/movie/%d", id), map[string]string{
		"append_to_response": "credits,external_ids,keywords,alternative_titles,videos,release_dates",
	}, &dto)
	if err != nil {
		return nil, err
	}
	return buildMovie(dto), nil
}

func buildMovie(dto movieDTO) *model.MovieBuild {
	b := &model.MovieBuild{
		Movie: model.Movie{
			ID:                    dto.ID,
			IMDBID:                dto.IMDBID,
			Title:                 dto.Title,
			OriginalTitle:         dto.OriginalTitle,
			OriginalLanguage:      dto.OriginalLanguage,
			Overview:              dto.Overview,
			Tagline:               dto.Tagline,
			Status:                dto.Status,
			ReleaseDate:           parseDate(dto.ReleaseDate),
			Runtime:               dto.Runtime,
			Budget:                dto.Budget,
			Revenue:               dto.Revenue,
			Popularity:            dto.Popularity,
			VoteAverage:           dto.VoteAverage,
			VoteCount:             dto.VoteCount,
			Adult:                 dto.Adult,
			Video:                 dto.Video,
			Homepage:              dto.Homepage,
			PosterPath:            dto.PosterPath,
			BackdropPath:          dto.BackdropPath,
			UpdatedAt:             nowUTC(),
		},
		ExternalIDs: model.MovieExternalIDs{
			MovieID:     dto.ID,
			IMDBID:      dto.ExternalIDs.IMDBID,
			WikidataID:  dto.ExternalIDs.WikidataID,
			FacebookID:  dto.ExternalIDs.FacebookID,
			InstagramID: dto.ExternalIDs.InstagramID,
			TwitterID:   dto.ExternalIDs.TwitterID,
		},
	}

	// belongs_to_collection may be null, a full object, or (per spec) just
	// an id; TMDB's movie endpoint always sends the full object when present.
	if dto.BelongsToCollection != nil {
		cid := dto.BelongsToCollection.ID
		b.Movie.BelongsToCollectionID = &cid
		b.Collection = &model.Collection{
			ID:           dto.BelongsToCollection.ID,
			Name:         dto.BelongsToCollection.Name,
			PosterPath:   dto.BelongsToCollection.PosterPath,
			BackdropPath: dto.BelongsToCollection.BackdropPath,
		}
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
	for _, v := range dto.Videos.Results {
		b.Videos = append(b.Videos, model.Video{
			ID: v.ID, RootID: dto.ID, Name: v.Name, Site: v.Site, Key: v.Key,
			Type: v.Type, Official: v.Official, PublishedAt: parseDate(v.PublishedAt),
		})
	}
	for _, rc := range dto.ReleaseDates.Results {
		for _, r := range rc.ReleaseDates {
			b.ReleaseDates = append(b.ReleaseDates, model.ReleaseDate{
				SurrogateID: uuidv7.New(), MovieID: dto.ID,
				ISO31661: rc.ISO31661, Certification: nonEmpty(r.Certification),
				ISO6391: nonEmpty(r.ISO6391), Note: nonEmpty(r.Note),
				ReleaseDate: parseDate(r.ReleaseDate), Type: r.Type,
			})
		}
	}

	return b
}
