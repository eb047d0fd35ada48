// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/panel"
)

func intPtr(v int) *int { return &v }

func TestEntryLine(t *testing.T) {
	tests := []struct {
		name  string
		entry content.Entry
		want  string
	}{
		{
			name:  "unrated",
			entry: content.Entry{ID: 3, Title: "Dark", Status: content.StatusInProgress},
			want:  "**Dark** 🟠 (#3)",
		},
		{
			name:  "rated",
			entry: content.Entry{ID: 9, Title: "Monster", Status: content.StatusDone, Rating: intPtr(10)},
			want:  "**Monster** 🟢 (#9) | Note: 10/10",
		},
		{
			name:  "unknown status has no icon",
			entry: content.Entry{ID: 1, Title: "X", Status: "Abandonné"},
			want:  "**X** (#1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, panel.EntryLine(tt.entry))
		})
	}
}

func TestRenderPage_HeadersFollowPresentationOrder(t *testing.T) {
	entries := []content.Entry{
		{ID: 1, Title: "a", Type: content.TypeManga},
		{ID: 2, Title: "b", Type: content.TypeManga},
		{ID: 3, Title: "c", Type: content.TypeAnime},
		{ID: 4, Title: "d", Type: content.TypeManga},
	}

	view := panel.RenderPage(panel.NewBrowser("Alice", entries))

	require.Len(t, view.Fields, 3)
	assert.Equal(t, "Manga 📚", view.Fields[0].Name)
	assert.Equal(t, 2, strings.Count(view.Fields[0].Value, "\n")+1)
	assert.Equal(t, "Animé 🎥", view.Fields[1].Name)
	assert.Equal(t, "Manga 📚", view.Fields[2].Name)
	assert.Equal(t, "Contenus de Alice", view.Title)
	assert.Equal(t, "Page 1/1 • 4 contenus", view.Footer)
}

func TestRenderPage_FooterCountsFilteredSet(t *testing.T) {
	entries := make([]content.Entry, 0, 30)
	for i := 1; i <= 30; i++ {
		status := content.StatusDone
		if i%2 == 0 {
			status = content.StatusToWatch
		}
		entries = append(entries, content.Entry{ID: int64(i), Title: "t", Type: content.TypeSeries, Status: status})
	}

	browser := panel.NewBrowser("Alice", entries)
	browser.SetStatusFilter("Terminé")
	browser.Next()

	view := panel.RenderPage(browser)
	assert.Equal(t, "Page 2/2 • 15 contenus", view.Footer)
	assert.Contains(t, view.Description, "Terminé")

	browser.SetTypeFilter("Manga")
	view = panel.RenderPage(browser)
	assert.Empty(t, view.Fields)
	assert.Contains(t, view.Description, "Aucun contenu")
}

func TestRenderRatings(t *testing.T) {
	notes := []int{10, 10, 9, 8, 7}
	entries := make([]content.Entry, len(notes))
	for i, note := range notes {
		entries[i] = content.Entry{ID: int64(i + 1), Title: string(rune('a' + i)), Type: content.TypeManga, Rating: intPtr(note)}
	}

	view := panel.RenderRatings("Alice", content.Rank(entries), time.Now())
	lines := strings.Split(view.Description, "\n")

	assert.Equal(t, []string{
		"🏆 Top 1 **a** (📚)", "|10/10",
		"🏆 Top 1 **b** (📚)", "|10/10",
		"🥈 Top 2 **c** (📚)", "|9/10",
		"🥉 Top 3 **d** (📚)", "|8/10",
		panel.Separator,
		"#4 **e** (📚)", "|7/10",
	}, lines)
	assert.Equal(t, "5 contenus notés", view.Footer)
}

func TestRenderRatings_Empty(t *testing.T) {
	view := panel.RenderRatings("Alice", nil, time.Now())
	assert.NotEmpty(t, view.Description)
	assert.NotContains(t, view.Description, panel.Separator)
}

func TestRenderAdded(t *testing.T) {
	view := panel.RenderAdded([]content.Entry{
		{ID: 1, Title: "A", Type: content.TypeWebtoon, Status: content.StatusToWatch},
		{ID: 2, Title: "B", Type: content.TypeWebtoon, Status: content.StatusToWatch},
	}, time.Now())

	assert.Equal(t, "2 contenus ajoutés", view.Title)
	assert.Equal(t, 0x9b59b6, view.Color)
	require.Len(t, view.Fields, 2)
	assert.Equal(t, "Webtoon 📱", view.Fields[0].Value)
	assert.Equal(t, "À voir 🔴", view.Fields[1].Value)
}

func TestTypeColor_Fallback(t *testing.T) {
	assert.Equal(t, 0xf1c40f, panel.TypeColor(content.TypeManga))
	assert.Equal(t, panel.ColorDefault, panel.TypeColor("Podcast"))
	assert.Empty(t, panel.TypeEmoji("Podcast"))
}

func TestRenderSearch(t *testing.T) {
	view := panel.RenderSearch("saga", []content.Entry{{ID: 2, Title: "Vinland Saga", Type: content.TypeManga, Status: content.StatusDone}})
	assert.Equal(t, "**Vinland Saga** 🟢 (#2) 📚", view.Description)
	assert.Equal(t, "1 résultat", view.Footer)

	empty := panel.RenderSearch("x", nil)
	assert.Equal(t, "Aucun résultat.", empty.Description)
}

func TestRenderPage_ClipsLongFields(t *testing.T) {
	long := strings.Repeat("x", 200)
	entries := make([]content.Entry, 10)
	for i := range entries {
		entries[i] = content.Entry{ID: int64(i + 1), Title: long, Type: content.TypeManga}
	}

	view := panel.RenderPage(panel.NewBrowser("Alice", entries))
	require.Len(t, view.Fields, 1)
	assert.LessOrEqual(t, len([]rune(view.Fields[0].Value)), 1024)
	assert.True(t, strings.HasSuffix(view.Fields[0].Value, "…"))
}
