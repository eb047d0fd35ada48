// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bot connects the content service to the Discord gateway.

It registers the slash command tree, turns interactions into service
calls and renders the results as embeds with interactive components.
*/
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// CommandRegistrar replaces the registered command set of an application.
// *discordgo.Session satisfies it.
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Bot owns the gateway connection.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	guildID string
	logger  *slog.Logger
}

// New prepares a bot for token. An empty guildID registers commands globally.
func New(token, guildID string, handler *Handler, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord_session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{session: session, handler: handler, guildID: guildID, logger: logger}, nil
}

/*
Open connects to the gateway. Commands are resynchronised on every Ready
event; interactions are handled under context until Close.

Parameters:
  - context: context.Context (parent of every interaction context)

Returns:
  - error: Connection failures
*/
func (bot *Bot) Open(context context.Context) error {
	bot.session.AddHandler(func(session *discordgo.Session, ready *discordgo.Ready) {
		appID := ready.User.ID
		if ready.Application != nil && ready.Application.ID != "" {
			appID = ready.Application.ID
		}

		bot.logger.Info("gateway_ready",
			slog.String("user", ready.User.Username),
			slog.Int("guilds", len(ready.Guilds)),
		)

		if err := SyncCommands(session, appID, bot.guildID, bot.logger); err != nil {
			bot.logger.Error("command_sync_failed", slog.Any("error", err))
		}
	})

	bot.session.AddHandler(func(session *discordgo.Session, event *discordgo.InteractionCreate) {
		bot.handler.Handle(context, session, event.Interaction)
	})

	if err := bot.session.Open(); err != nil {
		return fmt.Errorf("discord_open: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (bot *Bot) Close() error {
	return bot.session.Close()
}

// SyncCommands replaces the registered commands with [Commands]. Stale
// commands from older releases disappear in the same call.
func SyncCommands(registrar CommandRegistrar, appID, guildID string, logger *slog.Logger) error {
	registered, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("bulk_overwrite_commands: %w", err)
	}

	scope := "global"
	if guildID != "" {
		scope = "guild"
	}
	logger.Info("commands_synced",
		slog.String("scope", scope),
		slog.Int("count", len(registered)),
	)
	return nil
}
