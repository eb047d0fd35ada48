// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/redherring/internal/bot"
)

type fakeRegistrar struct {
	appID, guildID string
	commands       []*discordgo.ApplicationCommand
	err            error
}

func (f *fakeRegistrar) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.appID, f.guildID, f.commands = appID, guildID, commands
	return commands, f.err
}

func TestSyncCommands(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registrar := &fakeRegistrar{}

	require.NoError(t, bot.SyncCommands(registrar, "app", "guild", logger))

	assert.Equal(t, "app", registrar.appID)
	assert.Equal(t, "guild", registrar.guildID)
	require.Len(t, registrar.commands, 1)
	assert.Equal(t, bot.GroupName, registrar.commands[0].Name)
}

func TestSyncCommands_Failure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registrar := &fakeRegistrar{err: errors.New("401 Unauthorized")}

	assert.Error(t, bot.SyncCommands(registrar, "app", "", logger))
}

func TestCommands_Tree(t *testing.T) {
	commands := bot.Commands()
	require.Len(t, commands, 1)

	names := make([]string, 0)
	for _, sub := range commands[0].Options {
		assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, sub.Type)
		assert.NotEmpty(t, sub.Description, sub.Name)
		assert.LessOrEqual(t, len(sub.Options), 25, sub.Name)
		names = append(names, sub.Name)
	}

	assert.ElementsMatch(t, []string{
		bot.CommandAdd, bot.CommandAddMany, bot.CommandList, bot.CommandSearch,
		bot.CommandModify, bot.CommandDelete, bot.CommandRate,
	}, names)
}
