// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"cmp"
	"slices"
	"strings"

	"github.com/taibuivan/redherring/pkg/slice"
)

// RankedEntry is a rated entry with its dense rank (1-based).
type RankedEntry struct {
	Entry
	Rank int `json:"rank"`
}

// Rank keeps the rated entries, orders them by rating descending then title
// ascending, and assigns dense ranks: ties share a rank and the next
// distinct rating gets exactly one more.
func Rank(entries []Entry) []RankedEntry {
	rated := slice.Filter(entries, Entry.IsRated)

	slices.SortStableFunc(rated, func(a, b Entry) int {
		if byRating := cmp.Compare(*b.Rating, *a.Rating); byRating != 0 {
			return byRating
		}
		return compareTitles(a, b)
	})

	ranked := make([]RankedEntry, 0, len(rated))
	rank := 0
	for i, entry := range rated {
		if i == 0 || *entry.Rating != *rated[i-1].Rating {
			rank++
		}
		ranked = append(ranked, RankedEntry{Entry: entry, Rank: rank})
	}
	return ranked
}

// SortEntries orders entries in place according to by. [SortNone] leaves
// the slice untouched.
func SortEntries(entries []Entry, by Sort) {
	switch by {
	case SortAlpha:
		slices.SortStableFunc(entries, func(a, b Entry) int {
			if byTitle := compareTitles(a, b); byTitle != 0 {
				return byTitle
			}
			return cmp.Compare(a.ID, b.ID)
		})
	case SortDate:
		slices.SortStableFunc(entries, func(a, b Entry) int {
			if byDate := b.CreatedAt.Compare(a.CreatedAt); byDate != 0 {
				return byDate
			}
			return cmp.Compare(b.ID, a.ID)
		})
	}
}

// ParseSort maps a command option to a [Sort]; unknown values keep store order.
func ParseSort(value string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(value))) {
	case SortAlpha:
		return SortAlpha
	case SortDate:
		return SortDate
	default:
		return SortNone
	}
}

func compareTitles(a, b Entry) int {
	return cmp.Or(
		strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
		strings.Compare(a.Title, b.Title),
	)
}
