// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content manages the personal watch/read list of community members.

Each [Entry] is one tracked title (series, anime, webtoon or manga) owned by
exactly one member, with a reading status and an optional 0-10 rating.

# Core Responsibility

  - Catalogue: Defines the [Entry] entity and its enumerated Type and Status.
  - Normalization: Canonicalizes free-text type/status before persistence.
  - Ownership: Every read and mutation except creation is scoped by owner.
  - Ranking: Dense ranking of rated entries for the ratings view.

Storage is provided by [PostgresRepository] (networked variant) or
[SQLiteRepository] (embedded variant) behind the [Repository] contract.
*/
package content

import "time"

// # Enumerations

// Type is the kind of tracked content.
type Type string

const (
	TypeSeries  Type = "Série"
	TypeAnime   Type = "Animé"
	TypeWebtoon Type = "Webtoon"
	TypeManga   Type = "Manga"
)

// Types lists the canonical content types in menu order.
func Types() []Type {
	return []Type{TypeSeries, TypeAnime, TypeWebtoon, TypeManga}
}

// Status is the progress of a member on an entry.
type Status string

const (
	StatusToWatch    Status = "À voir"
	StatusInProgress Status = "En cours"
	StatusDone       Status = "Terminé"
)

// Statuses lists the canonical statuses in menu order.
func Statuses() []Status {
	return []Status{StatusToWatch, StatusInProgress, StatusDone}
}

// # Rating Bounds

const (
	MinRating = 0
	MaxRating = 10
)

// # Core Entities

// Entry is one tracked title in a member's list.
type Entry struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Type      Type      `json:"content_type"`
	Status    Status    `json:"status"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsRated reports whether a rating has been set.
func (e Entry) IsRated() bool {
	return e.Rating != nil
}

// NewEntries describes one add-flow submission: one or more titles sharing
// a type and a status.
type NewEntries struct {
	OwnerID string
	Titles  []string
	Type    string
	Status  string
}

// # Search & Filtering

// Sort selects the presentation order of a listing.
type Sort string

const (
	// SortNone keeps store order (id ascending).
	SortNone Sort = ""
	// SortAlpha orders by title, case-insensitive ascending.
	SortAlpha Sort = "alpha"
	// SortDate orders by creation time, newest first.
	SortDate Sort = "date"
)

// Filter restricts a listing by type and/or status. Empty fields match all.
type Filter struct {
	Type   Type   `json:"content_type,omitempty"`
	Status Status `json:"status,omitempty"`
}

// Match reports whether entry satisfies every set field of the filter.
func (f Filter) Match(entry Entry) bool {
	if f.Type != "" && entry.Type != f.Type {
		return false
	}
	if f.Status != "" && entry.Status != f.Status {
		return false
	}
	return true
}

// # Field Identifiers

const (
	FieldTitle  = "titre"
	FieldTitles = "titres"
	FieldType   = "type"
	FieldStatus = "statut"
	FieldRating = "note"
	FieldID     = "id"
	FieldSort   = "tri"
	FieldIDs    = "selection"
)

// maxTitleLength bounds a single title.
const maxTitleLength = 200
