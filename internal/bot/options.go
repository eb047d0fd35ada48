// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"github.com/bwmarrin/discordgo"
)

// commandOptions indexes the options of one sub-command by name.
//
// Values are read from the raw JSON-decoded Value rather than through the
// discordgo helpers, which panic on a type mismatch.
type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

// subcommand returns the invoked sub-command of the group and its options.
func subcommand(data discordgo.ApplicationCommandInteractionData) (string, commandOptions) {
	options := commandOptions{}
	if len(data.Options) == 0 {
		return "", options
	}

	sub := data.Options[0]
	for _, option := range sub.Options {
		options[option.Name] = option
	}
	return sub.Name, options
}

func (options commandOptions) String(name string) string {
	if option, ok := options[name]; ok {
		if value, ok := option.Value.(string); ok {
			return value
		}
	}
	return ""
}

// Int returns integer options, which arrive as JSON numbers (float64).
func (options commandOptions) Int(name string) (int64, bool) {
	option, ok := options[name]
	if !ok {
		return 0, false
	}

	switch value := option.Value.(type) {
	case float64:
		return int64(value), true
	case int64:
		return value, true
	case int:
		return int64(value), true
	default:
		return 0, false
	}
}

func (options commandOptions) Bool(name string) bool {
	if option, ok := options[name]; ok {
		value, _ := option.Value.(bool)
		return value
	}
	return false
}

// User returns the snowflake of a user option.
func (options commandOptions) User(name string) string {
	return options.String(name)
}

// # Identity

// invoker returns the member (guild) or user (DM) behind an interaction.
func invoker(interaction *discordgo.Interaction) *discordgo.User {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User
	}
	return interaction.User
}

// isAdmin reports whether the invoking member holds the administrator permission.
func isAdmin(interaction *discordgo.Interaction) bool {
	return interaction.Member != nil &&
		interaction.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// displayName prefers the guild nickname, then the global name, then the username.
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// resolvedName returns the display name of a user option's target.
func resolvedName(data discordgo.ApplicationCommandInteractionData, userID string) string {
	if data.Resolved == nil {
		return "<@" + userID + ">"
	}

	var member *discordgo.Member
	if data.Resolved.Members != nil {
		member = data.Resolved.Members[userID]
	}
	if name := displayName(member, data.Resolved.Users[userID]); name != "" {
		return name
	}
	return "<@" + userID + ">"
}
