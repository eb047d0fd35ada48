// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides page arithmetic for in-memory result sets.
//
// # Overview
//
// Pages are 0-indexed. Navigation never leaves the range implied by the
// total count: an empty set still has exactly one (empty) page.
package pagination

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
)

// Meta describes the current page of a result set.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs page metadata, clamping page into range.
func NewMeta(page, limit, total int) Meta {
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := TotalPages(total, limit)
	return Meta{
		Page:       Clamp(page, totalPages),
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// TotalPages returns ceil(total / limit), never less than 1.
func TotalPages(total, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}

	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp keeps page within [0, totalPages-1].
func Clamp(page, totalPages int) int {
	if page < 0 {
		return 0
	}
	if totalPages < 1 {
		return 0
	}
	if page > totalPages-1 {
		return totalPages - 1
	}
	return page
}

// Bounds returns the half-open slice range [start, end) of the page.
func (m Meta) Bounds() (start, end int) {
	start = m.Page * m.Limit
	if start > m.Total {
		start = m.Total
	}

	end = start + m.Limit
	if end > m.Total {
		end = m.Total
	}
	return start, end
}

// HasPrev reports whether a previous page exists.
func (m Meta) HasPrev() bool { return m.Page > 0 }

// HasNext reports whether a following page exists.
func (m Meta) HasNext() bool { return m.Page < m.TotalPages-1 }
