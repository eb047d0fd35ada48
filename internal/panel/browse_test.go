// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/panel"
)

func snapshot(n int, contentType content.Type, status content.Status) []content.Entry {
	entries := make([]content.Entry, n)
	for i := range entries {
		entries[i] = content.Entry{ID: int64(i + 1), Title: "T", Type: contentType, Status: status}
	}
	return entries
}

func TestBrowser_PagingClamps(t *testing.T) {
	browser := panel.NewBrowser("alice", snapshot(25, content.TypeManga, content.StatusDone))

	pages := []int{browser.Meta().Page}
	for range 4 {
		browser.Next()
		pages = append(pages, browser.Page)
	}
	assert.Equal(t, []int{0, 1, 2, 2, 2}, pages)

	page, meta := browser.Current()
	assert.Len(t, page, 5)
	assert.Equal(t, 3, meta.TotalPages)

	pages = pages[:0]
	for range 4 {
		browser.Prev()
		pages = append(pages, browser.Page)
	}
	assert.Equal(t, []int{1, 0, 0, 0}, pages)
}

func TestBrowser_EmptySnapshot(t *testing.T) {
	browser := panel.NewBrowser("alice", nil)
	browser.Next()
	browser.Prev()

	page, meta := browser.Current()
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.Page)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestBrowser_FilterIntersection(t *testing.T) {
	entries := []content.Entry{
		{ID: 1, Type: content.TypeManga, Status: content.StatusDone},
		{ID: 2, Type: content.TypeManga, Status: content.StatusToWatch},
		{ID: 3, Type: content.TypeAnime, Status: content.StatusDone},
		{ID: 4, Type: content.TypeSeries, Status: content.StatusDone},
	}
	ids := func(entries []content.Entry) []int64 {
		out := make([]int64, len(entries))
		for i, entry := range entries {
			out[i] = entry.ID
		}
		return out
	}

	browser := panel.NewBrowser("alice", entries)

	browser.SetTypeFilter("Manga")
	browser.SetStatusFilter("Terminé")
	assert.Equal(t, []int64{1}, ids(browser.Filtered()))

	browser.SetTypeFilter(panel.FilterAll)
	assert.Equal(t, []int64{1, 3, 4}, ids(browser.Filtered()))

	browser.SetStatusFilter(panel.FilterAll)
	assert.Len(t, browser.Filtered(), 4)
}

func TestBrowser_FilterResetsPage(t *testing.T) {
	entries := append(snapshot(15, content.TypeManga, content.StatusDone), snapshot(15, content.TypeAnime, content.StatusDone)...)
	browser := panel.NewBrowser("alice", entries)

	browser.Next()
	browser.Next()
	assert.Equal(t, 2, browser.Page)

	browser.SetTypeFilter("anime")
	assert.Equal(t, 0, browser.Page)
	assert.Equal(t, content.TypeAnime, browser.Filter.Type)

	browser.Next()
	browser.SetStatusFilter("termine")
	assert.Equal(t, 0, browser.Page)
}
