// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package model holds the row types the normalizer produces and the bulk
loader writes. Every type mirrors one schema.Table and exposes Values() in
the exact order of that table's Columns, so the loader can bind it to a
parameterized multi-row INSERT without reflection.
*/
package model

import "time"

// Genre is a shared dimension row for both movie_genres and series_genres;
// which table it lands in is decided by the caller, not the type.
type Genre struct {
	ID   int64
	Name string
}

func (g Genre) Values() []any { return []any{g.ID, g.Name} }

// GenreAssoc links a root id to a genre id.
type GenreAssoc struct {
	RootID  int64
	GenreID int64
}

func (a GenreAssoc) Values() []any { return []any{a.RootID, a.GenreID} }

// Company is a production company dimension row.
type Company struct {
	ID            int64
	Name          string
	LogoPath      *string
	OriginCountry string
}

func (c Company) Values() []any { return []any{c.ID, c.Name, c.LogoPath, c.OriginCountry} }

// CompanyAssoc links a root id to a company id.
type CompanyAssoc struct {
	RootID    int64
	CompanyID int64
}

func (a CompanyAssoc) Values() []any { return []any{a.RootID, a.CompanyID} }

// Country is keyed by its ISO 3166-1 code rather than a surrogate id.
type Country struct {
	ISO31661 string
	Name     string
}

func (c Country) Values() []any { return []any{c.ISO31661, c.Name} }

// CountryAssoc links a root id to a production country code.
type CountryAssoc struct {
	RootID   int64
	ISO31661 string
}

func (a CountryAssoc) Values() []any { return []any{a.RootID, a.ISO31661} }

// Language is keyed by its ISO 639-1 code.
type Language struct {
	ISO6391     string
	EnglishName string
	Name        string
}

func (l Language) Values() []any { return []any{l.ISO6391, l.EnglishName, l.Name} }

// LanguageAssoc links a root id to a spoken language code.
type LanguageAssoc struct {
	RootID   int64
	ISO6391  string
}

func (a LanguageAssoc) Values() []any { return []any{a.RootID, a.ISO6391} }

// CastMember is a dimension row shared by movie and series cast tables.
type CastMember struct {
	ID          int64
	Name        string
	Gender      int
	ProfilePath *string
}

func (c CastMember) Values() []any { return []any{c.ID, c.Name, c.Gender, c.ProfilePath} }

// CastAssoc records one actor's billing on one root, in upstream order.
type CastAssoc struct {
	RootID       int64
	CastMemberID int64
	Character    string
	CastOrder    int
}

func (a CastAssoc) Values() []any {
	return []any{a.RootID, a.CastMemberID, a.Character, a.CastOrder}
}

// Keyword is a dimension row shared by movie_keywords and series_keywords.
type Keyword struct {
	ID   int64
	Name string
}

func (k Keyword) Values() []any { return []any{k.ID, k.Name} }

// KeywordAssoc links a root id to a keyword id.
type KeywordAssoc struct {
	RootID    int64
	KeywordID int64
}

func (a KeywordAssoc) Values() []any { return []any{a.RootID, a.KeywordID} }

// AlternativeTitle is a child row without a natural upstream id; SurrogateID
// is assigned by the normalizer (pkg/uuidv7).
type AlternativeTitle struct {
	SurrogateID string
	RootID      int64
	ISO31661    string
	Title       string
	Type        string
}

func (t AlternativeTitle) Values() []any {
	return []any{t.SurrogateID, t.RootID, t.ISO31661, t.Title, t.Type}
}

// Video uses the upstream string id as its primary key.
type Video struct {
	ID          string
	RootID      int64
	Name        string
	Site        string
	Key         string
	Type        string
	Official    bool
	PublishedAt *time.Time
}

func (v Video) Values() []any {
	return []any{v.ID, v.RootID, v.Name, v.Site, v.Key, v.Type, v.Official, v.PublishedAt}
}

// ReleaseDate is a child row keyed by a surrogate id; Certification and
// ReleaseDate are nullable per spec.md's normalizer rules.
type ReleaseDate struct {
	SurrogateID   string
	MovieID       int64
	ISO31661      string
	Certification *string
	ISO6391       *string
	Note          *string
	ReleaseDate   *time.Time
	Type          int
}

func (r ReleaseDate) Values() []any {
	return []any{
		r.SurrogateID, r.MovieID, r.ISO31661, r.Certification, r.ISO6391,
		r.Note, r.ReleaseDate, r.Type,
	}
}
