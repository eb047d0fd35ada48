// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/redherring/internal/core/content"
)

// # Presentation Constants

const (
	ColorList    = 0x3498db
	ColorDefault = 0x95a5a6
	ColorDanger  = 0xe67e22

	// Separator follows the last entry ranked third in the ratings view.
	Separator = "──────────"

	maxDescription = 4096
	maxFieldValue  = 1024
	ellipsis       = "…"
)

var typeColors = map[content.Type]int{
	content.TypeSeries:  0x1abc9c,
	content.TypeAnime:   0xe74c3c,
	content.TypeWebtoon: 0x9b59b6,
	content.TypeManga:   0xf1c40f,
}

var typeEmojis = map[content.Type]string{
	content.TypeSeries:  "📺",
	content.TypeAnime:   "🎥",
	content.TypeWebtoon: "📱",
	content.TypeManga:   "📚",
}

var statusEmojis = map[content.Status]string{
	content.StatusToWatch:    "🔴",
	content.StatusInProgress: "🟠",
	content.StatusDone:       "🟢",
}

var medals = map[int]string{
	1: "🏆 Top 1",
	2: "🥈 Top 2",
	3: "🥉 Top 3",
}

// TypeEmoji returns the icon of t, or "" for unknown types.
func TypeEmoji(t content.Type) string { return typeEmojis[t] }

// StatusEmoji returns the icon of s, or "" for unknown statuses.
func StatusEmoji(s content.Status) string { return statusEmojis[s] }

// TypeColor returns the accent color of t, grey for unknown types.
func TypeColor(t content.Type) int {
	if color, ok := typeColors[t]; ok {
		return color
	}
	return ColorDefault
}

// # View Model

// Field is one titled block of a [View].
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// View is a platform-neutral panel: the bot layer turns it into an embed.
type View struct {
	Title       string
	Description string
	Color       int
	Fields      []Field
	Footer      string
	Timestamp   time.Time
}

// # Browse Panel

// RenderPage renders the current page of b. A new section starts every time
// the content type differs from the previous rendered entry.
func RenderPage(b *Browser) View {
	entries, meta := b.Current()

	view := View{
		Title:  "Contenus de " + b.OwnerName,
		Color:  ColorList,
		Footer: fmt.Sprintf("Page %d/%d • %s", meta.Page+1, meta.TotalPages, plural(meta.Total, "contenu")),
	}

	var active []string
	if b.Filter.Type != "" {
		active = append(active, label(string(b.Filter.Type), TypeEmoji(b.Filter.Type)))
	}
	if b.Filter.Status != "" {
		active = append(active, label(string(b.Filter.Status), StatusEmoji(b.Filter.Status)))
	}
	if len(active) > 0 {
		view.Description = "Filtres : " + strings.Join(active, ", ")
	}

	if len(entries) == 0 {
		view.Description = strings.TrimSpace(view.Description + "\nAucun contenu ne correspond à ces filtres.")
		return view
	}

	var lines []string
	var current content.Type
	flush := func() {
		if len(lines) > 0 {
			view.Fields = append(view.Fields, Field{
				Name:  label(string(current), TypeEmoji(current)),
				Value: clip(strings.Join(lines, "\n"), maxFieldValue),
			})
		}
		lines = nil
	}

	for i, entry := range entries {
		if i == 0 || entry.Type != current {
			flush()
			current = entry.Type
		}
		lines = append(lines, EntryLine(entry))
	}
	flush()

	return view
}

// EntryLine renders `**title** <status icon> (#id)` with the rating suffix
// when the entry is rated.
func EntryLine(entry content.Entry) string {
	line := label("**"+entry.Title+"**", StatusEmoji(entry.Status)) + fmt.Sprintf(" (#%d)", entry.ID)
	if entry.Rating != nil {
		line += fmt.Sprintf(" | Note: %d/10", *entry.Rating)
	}
	return line
}

// # Ratings Panel

// RenderRatings renders dense-ranked entries with medal labels for the
// first three ranks.
func RenderRatings(ownerName string, ranked []content.RankedEntry, now time.Time) View {
	view := View{
		Title:     "Classement de " + ownerName,
		Color:     ColorList,
		Timestamp: now,
		Footer:    plural(len(ranked), "contenu noté"),
	}
	if len(ranked) == 0 {
		view.Description = "Aucun contenu noté pour l'instant."
		return view
	}

	lastTop := -1
	for i, entry := range ranked {
		if entry.Rank <= 3 {
			lastTop = i
		}
	}

	lines := make([]string, 0, len(ranked)+1)
	for i, entry := range ranked {
		lines = append(lines, RankLine(entry))
		if i == lastTop {
			lines = append(lines, Separator)
		}
	}

	view.Description = clip(strings.Join(lines, "\n"), maxDescription)
	return view
}

// RankLine renders `<badge> **title** (<type icon>)` followed by the note.
func RankLine(entry content.RankedEntry) string {
	badge, ok := medals[entry.Rank]
	if !ok {
		badge = fmt.Sprintf("#%d", entry.Rank)
	}

	line := badge + " **" + entry.Title + "**"
	if emoji := TypeEmoji(entry.Type); emoji != "" {
		line += " (" + emoji + ")"
	}

	rating := 0
	if entry.Rating != nil {
		rating = *entry.Rating
	}
	return line + fmt.Sprintf("\n|%d/10", rating)
}

// # Search Panel

// RenderSearch lists title matches for text.
func RenderSearch(text string, entries []content.Entry) View {
	view := View{
		Title: fmt.Sprintf("Recherche : « %s »", text),
		Color: ColorList,
	}
	if len(entries) == 0 {
		view.Description = "Aucun résultat."
		return view
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, label(EntryLine(entry), TypeEmoji(entry.Type)))
	}
	view.Description = clip(strings.Join(lines, "\n"), maxDescription)
	view.Footer = plural(len(entries), "résultat")
	return view
}

// # Form Panels

// RenderAddForm shows the titles being added and the choices so far.
func RenderAddForm(form *AddForm) View {
	title := "Nouveau contenu"
	if len(form.Titles) > 1 {
		title = fmt.Sprintf("Nouveaux contenus (%d)", len(form.Titles))
	}

	return View{
		Title:       title,
		Description: clip(boldList(form.Titles), maxDescription),
		Color:       TypeColor(form.Type),
		Fields: []Field{
			{Name: "Type", Value: choice(string(form.Type), TypeEmoji(form.Type)), Inline: true},
			{Name: "Statut", Value: choice(string(form.Status), StatusEmoji(form.Status)), Inline: true},
		},
		Footer: "Choisis un type et un statut, puis confirme.",
	}
}

// RenderAdded confirms the created entries.
func RenderAdded(entries []content.Entry, now time.Time) View {
	if len(entries) == 0 {
		return View{Title: "Aucun contenu ajouté", Color: ColorDefault, Timestamp: now}
	}

	first := entries[0]
	titles := make([]string, len(entries))
	for i, entry := range entries {
		titles[i] = fmt.Sprintf("%s (#%d)", entry.Title, entry.ID)
	}

	title := "Contenu ajouté"
	if len(entries) > 1 {
		title = fmt.Sprintf("%d contenus ajoutés", len(entries))
	}

	return View{
		Title:       title,
		Description: clip(boldList(titles), maxDescription),
		Color:       TypeColor(first.Type),
		Timestamp:   now,
		Fields: []Field{
			{Name: "Type", Value: label(string(first.Type), TypeEmoji(first.Type)), Inline: true},
			{Name: "Statut", Value: label(string(first.Status), StatusEmoji(first.Status)), Inline: true},
		},
	}
}

// RenderStatusForm shows the entry being modified and the pending status.
func RenderStatusForm(form *StatusForm) View {
	return View{
		Title:       fmt.Sprintf("Modifier #%d", form.EntryID),
		Description: "**" + form.Title + "**",
		Color:       ColorList,
		Fields: []Field{
			{Name: "Statut actuel", Value: label(string(form.Current), StatusEmoji(form.Current)), Inline: true},
			{Name: "Nouveau statut", Value: choice(string(form.Status), StatusEmoji(form.Status)), Inline: true},
		},
		Footer: "Choisis un statut, puis confirme.",
	}
}

// RenderStatusChanged confirms a status update.
func RenderStatusChanged(form *StatusForm, now time.Time) View {
	return View{
		Title:       "Statut mis à jour",
		Description: fmt.Sprintf("**%s** (#%d) : %s", form.Title, form.EntryID, label(string(form.Status), StatusEmoji(form.Status))),
		Color:       ColorList,
		Timestamp:   now,
	}
}

// RenderRated confirms a rating update.
func RenderRated(entry content.Entry, now time.Time) View {
	rating := 0
	if entry.Rating != nil {
		rating = *entry.Rating
	}
	return View{
		Title:       "Note enregistrée",
		Description: fmt.Sprintf("**%s** (#%d) : %d/10", entry.Title, entry.ID, rating),
		Color:       TypeColor(entry.Type),
		Timestamp:   now,
	}
}

// RenderDeleteForm lists the selectable entries of targetName.
func RenderDeleteForm(form *DeleteForm, targetName string) View {
	view := View{
		Title:  "Supprimer des contenus de " + targetName,
		Color:  ColorDanger,
		Footer: fmt.Sprintf("%d sélectionné(s) sur %d", len(form.Selected), len(form.Candidates)),
	}

	lines := []string{"Sélectionne les contenus à supprimer, puis confirme."}
	if form.Truncated {
		lines = append(lines, fmt.Sprintf("Seuls les %d premiers contenus sont proposés.", len(form.Candidates)))
	}
	view.Description = strings.Join(lines, "\n")
	return view
}

// RenderDeleted reports how many entries were removed.
func RenderDeleted(removed int, now time.Time) View {
	return View{
		Title:       "Suppression terminée",
		Description: plural(removed, "contenu supprimé") + ".",
		Color:       ColorDanger,
		Timestamp:   now,
	}
}

// # Helpers

// label joins text and an optional icon with one space.
func label(text, emoji string) string {
	if emoji == "" {
		return text
	}
	return text + " " + emoji
}

// choice renders a pending selection.
func choice(value, emoji string) string {
	if value == "" {
		return "à choisir"
	}
	return label(value, emoji)
}

func boldList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "**" + item + "**"
	}
	return strings.Join(lines, "\n")
}

func plural(n int, noun string) string {
	if n > 1 {
		words := strings.Fields(noun)
		for i := range words {
			words[i] += "s"
		}
		noun = strings.Join(words, " ")
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// clip truncates s to max characters.
func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + ellipsis
}
