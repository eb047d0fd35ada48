// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/redherring/internal/core/content"
)

func rated(id int64, title string, note int) content.Entry {
	return content.Entry{ID: id, Title: title, Rating: &note}
}

func TestRank_Dense(t *testing.T) {
	entries := []content.Entry{
		rated(1, "f", 8),
		rated(2, "a", 10),
		{ID: 3, Title: "unrated"},
		rated(4, "b", 10),
		rated(5, "c", 9),
		rated(6, "e", 8),
		rated(7, "d", 8),
	}

	ranked := content.Rank(entries)

	titles := make([]string, len(ranked))
	ranks := make([]int, len(ranked))
	for i, entry := range ranked {
		titles[i] = entry.Title
		ranks[i] = entry.Rank
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, titles)
	assert.Equal(t, []int{1, 1, 2, 3, 3, 3}, ranks)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, content.Rank([]content.Entry{{ID: 1, Title: "x"}}))
	assert.Empty(t, content.Rank(nil))
}

func TestRank_TitleTieBreakIgnoresCase(t *testing.T) {
	ranked := content.Rank([]content.Entry{rated(1, "beta", 5), rated(2, "Alpha", 5)})
	assert.Equal(t, "Alpha", ranked[0].Title)
	assert.Equal(t, 1, ranked[1].Rank)
}

func TestSortEntries(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fresh := func() []content.Entry {
		return []content.Entry{
			{ID: 1, Title: "zeta", CreatedAt: base},
			{ID: 2, Title: "Alpha", CreatedAt: base.Add(2 * time.Hour)},
			{ID: 3, Title: "mu", CreatedAt: base.Add(time.Hour)},
			{ID: 4, Title: "alpha", CreatedAt: base.Add(2 * time.Hour)},
		}
	}
	ids := func(entries []content.Entry) []int64 {
		out := make([]int64, len(entries))
		for i, entry := range entries {
			out[i] = entry.ID
		}
		return out
	}

	tests := []struct {
		by   content.Sort
		want []int64
	}{
		{content.SortNone, []int64{1, 2, 3, 4}},
		{content.SortAlpha, []int64{2, 4, 3, 1}},
		{content.SortDate, []int64{4, 2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			entries := fresh()
			content.SortEntries(entries, tt.by)
			assert.Equal(t, tt.want, ids(entries))
		})
	}
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, content.SortAlpha, content.ParseSort(" Alpha "))
	assert.Equal(t, content.SortDate, content.ParseSort("date"))
	assert.Equal(t, content.SortNone, content.ParseSort(""))
	assert.Equal(t, content.SortNone, content.ParseSort("rating"))
}
