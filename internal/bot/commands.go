// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/taibuivan/redherring/internal/core/content"
)

// # Command Tree

const (
	GroupName = "contenu"

	CommandAdd     = "ajouter"
	CommandAddMany = "ajoutermulti"
	CommandList    = "liste"
	CommandSearch  = "recherche"
	CommandModify  = "modifier"
	CommandDelete  = "supprimer"
	CommandRate    = "noter"
)

// Option names.
const (
	OptionTitle  = "titre"
	OptionTitles = "titres"
	OptionMember = "membre"
	OptionSort   = "tri"
	OptionRated  = "notes"
	OptionText   = "texte"
	OptionID     = "id"
	OptionType   = "type"
	OptionStatus = "statut"
	OptionNote   = "note"
)

// Commands returns the slash command tree registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	minRating := float64(content.MinRating)
	minID := float64(1)

	return []*discordgo.ApplicationCommand{{
		Name:        GroupName,
		Description: "Gérer tes contenus",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandAdd,
				Description: "Ajouter un contenu",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: OptionTitle, Description: "Titre du contenu", Required: true, MaxLength: 200},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandAddMany,
				Description: "Ajouter plusieurs contenus du même type et statut",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: OptionTitles, Description: "Titres séparés par des virgules", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandList,
				Description: "Afficher ta liste (option: notes)",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionUser, Name: OptionMember, Description: "Afficher la liste d'un autre membre"},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionSort,
						Description: "Ordre d'affichage",
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Alphabétique", Value: string(content.SortAlpha)},
							{Name: "Plus récents", Value: string(content.SortDate)},
						},
					},
					{Type: discordgo.ApplicationCommandOptionBoolean, Name: OptionRated, Description: "Afficher uniquement les contenus notés (triés par note)"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandSearch,
				Description: "Chercher un contenu par titre",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: OptionText, Description: "Partie du titre", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandModify,
				Description: "Changer le statut d'un contenu",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionInteger, Name: OptionID, Description: "Numéro du contenu", Required: true, MinValue: &minID},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandDelete,
				Description: "Supprimer un ou plusieurs contenus",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionUser, Name: OptionMember, Description: "Membre concerné (administrateurs)"},
					{Type: discordgo.ApplicationCommandOptionString, Name: OptionType, Description: "Filtrer par type", Choices: typeChoices()},
					{Type: discordgo.ApplicationCommandOptionString, Name: OptionStatus, Description: "Filtrer par statut", Choices: statusChoices()},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        CommandRate,
				Description: "Noter un contenu de 0 à 10",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionInteger, Name: OptionID, Description: "Numéro du contenu", Required: true, MinValue: &minID},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: OptionNote, Description: "Note sur 10", Required: true, MinValue: &minRating, MaxValue: content.MaxRating},
				},
			},
		},
	}}
}

func typeChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(content.Types()))
	for _, t := range content.Types() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(t), Value: string(t)})
	}
	return choices
}

func statusChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(content.Statuses()))
	for _, s := range content.Statuses() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(s), Value: string(s)})
	}
	return choices
}
