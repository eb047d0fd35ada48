// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/panel"
)

// Discord limits on select option text.
const (
	maxOptionLabel       = 100
	maxOptionDescription = 100
)

// toEmbed converts a panel view into a Discord embed.
func toEmbed(view panel.View) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       view.Title,
		Description: view.Description,
		Color:       view.Color,
	}
	if !view.Timestamp.IsZero() {
		embed.Timestamp = view.Timestamp.UTC().Format(time.RFC3339)
	}
	if view.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: view.Footer}
	}
	for _, field := range view.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return embed
}

// # Components

func addComponents(session *panel.Session) []discordgo.MessageComponent {
	form := session.Add
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			typeMenu(session.CustomID(panel.ActionType), "Type", string(form.Type), false),
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			statusMenu(session.CustomID(panel.ActionStatus), "Statut", string(form.Status), false),
		}},
		confirmRow(session, discordgo.SuccessButton, "Ajouter"),
	}
}

func statusComponents(session *panel.Session) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			statusMenu(session.CustomID(panel.ActionStatus), "Nouveau statut", string(session.Status.Status), false),
		}},
		confirmRow(session, discordgo.PrimaryButton, "Enregistrer"),
	}
}

func deleteComponents(session *panel.Session) []discordgo.MessageComponent {
	form := session.Delete

	selected := make(map[int64]bool, len(form.Selected))
	for _, id := range form.Selected {
		selected[id] = true
	}

	options := make([]discordgo.SelectMenuOption, 0, len(form.Candidates))
	for _, candidate := range form.Candidates {
		option := discordgo.SelectMenuOption{
			Label:       truncate(candidate.Title, maxOptionLabel),
			Value:       strconv.FormatInt(candidate.ID, 10),
			Description: truncate(fmt.Sprintf("#%d • %s • %s", candidate.ID, candidate.Type, candidate.Status), maxOptionDescription),
			Default:     selected[candidate.ID],
		}
		if emoji := panel.TypeEmoji(candidate.Type); emoji != "" {
			option.Emoji = &discordgo.ComponentEmoji{Name: emoji}
		}
		options = append(options, option)
	}

	minValues := 0
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    session.CustomID(panel.ActionSelect),
				Placeholder: "Contenus à supprimer",
				MinValues:   &minValues,
				MaxValues:   len(options),
				Options:     options,
			},
		}},
		confirmRow(session, discordgo.DangerButton, "Supprimer"),
	}
}

func browseComponents(session *panel.Session) []discordgo.MessageComponent {
	browser := session.Browse
	meta := browser.Meta()

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			typeMenu(session.CustomID(panel.ActionType), "Tous les types", string(browser.Filter.Type), true),
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			statusMenu(session.CustomID(panel.ActionStatus), "Tous les statuts", string(browser.Filter.Status), true),
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "◀ Précédent", Style: discordgo.SecondaryButton, CustomID: session.CustomID(panel.ActionPrev), Disabled: !meta.HasPrev()},
			discordgo.Button{Label: "Suivant ▶", Style: discordgo.SecondaryButton, CustomID: session.CustomID(panel.ActionNext), Disabled: !meta.HasNext()},
		}},
	}
}

func confirmRow(session *panel.Session, style discordgo.ButtonStyle, label string) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: label, Style: style, CustomID: session.CustomID(panel.ActionConfirm)},
		discordgo.Button{Label: "Annuler", Style: discordgo.SecondaryButton, CustomID: session.CustomID(panel.ActionCancel)},
	}}
}

// typeMenu builds a single-choice type menu. withAll prepends the option
// clearing the filter.
func typeMenu(customID, placeholder, current string, withAll bool) discordgo.SelectMenu {
	var options []discordgo.SelectMenuOption
	if withAll {
		options = append(options, discordgo.SelectMenuOption{Label: "Tous les types", Value: panel.FilterAll, Default: current == ""})
	}
	for _, t := range content.Types() {
		options = append(options, discordgo.SelectMenuOption{
			Label:   string(t),
			Value:   string(t),
			Emoji:   &discordgo.ComponentEmoji{Name: panel.TypeEmoji(t)},
			Default: current == string(t),
		})
	}
	return singleMenu(customID, placeholder, options)
}

func statusMenu(customID, placeholder, current string, withAll bool) discordgo.SelectMenu {
	var options []discordgo.SelectMenuOption
	if withAll {
		options = append(options, discordgo.SelectMenuOption{Label: "Tous les statuts", Value: panel.FilterAll, Default: current == ""})
	}
	for _, s := range content.Statuses() {
		options = append(options, discordgo.SelectMenuOption{
			Label:   string(s),
			Value:   string(s),
			Emoji:   &discordgo.ComponentEmoji{Name: panel.StatusEmoji(s)},
			Default: current == string(s),
		})
	}
	return singleMenu(customID, placeholder, options)
}

func singleMenu(customID, placeholder string, options []discordgo.SelectMenuOption) discordgo.SelectMenu {
	one := 1
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    customID,
		Placeholder: placeholder,
		MinValues:   &one,
		MaxValues:   1,
		Options:     options,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
