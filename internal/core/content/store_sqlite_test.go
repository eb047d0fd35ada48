// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/internal/platform/migration"
	"github.com/taibuivan/redherring/internal/platform/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSQLiteRepository returns a migrated repository backed by a temp file.
func newSQLiteRepository(t *testing.T) *content.SQLiteRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contents.db")
	require.NoError(t, migration.RunUp(constants.DriverSQLite, path, discardLogger()))

	db, err := sqlite.Open(context.Background(), path, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return content.NewSQLiteRepository(db)
}

func TestSQLiteRepository_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	aliceID, err := repo.Create(ctx, "alice", "Dark", content.TypeSeries, content.StatusToWatch)
	require.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "Berserk", content.TypeManga, content.StatusInProgress)
	require.NoError(t, err)

	entries, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Dark", entries[0].Title)
	assert.False(t, entries[0].CreatedAt.IsZero())

	_, err = repo.FindByIDAndOwner(ctx, aliceID, "bob")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	err = repo.UpdateStatus(ctx, aliceID, "bob", content.StatusDone)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	err = repo.UpdateRating(ctx, aliceID, "bob", 7)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	entry, err := repo.FindByIDAndOwner(ctx, aliceID, "alice")
	require.NoError(t, err)
	assert.Equal(t, content.StatusToWatch, entry.Status)
	assert.Nil(t, entry.Rating)
}

func TestSQLiteRepository_CreateBatchKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	ids, err := repo.CreateBatch(ctx, "alice", []string{"A", "B", "C"}, content.TypeManga, content.StatusToWatch)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	entries, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	titles := make([]string, len(entries))
	for i, entry := range entries {
		titles[i] = entry.Title
		assert.Equal(t, content.TypeManga, entry.Type)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestSQLiteRepository_UpdateRating(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	id, err := repo.Create(ctx, "alice", "Monster", content.TypeManga, content.StatusDone)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateRating(ctx, id, "alice", 10))

	entry, err := repo.FindByIDAndOwner(ctx, id, "alice")
	require.NoError(t, err)
	require.NotNil(t, entry.Rating)
	assert.Equal(t, 10, *entry.Rating)
}

func TestSQLiteRepository_SearchByTitle(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	for i := 12; i >= 1; i-- {
		_, err := repo.Create(ctx, "alice", fmt.Sprintf("One Piece %02d", i), content.TypeAnime, content.StatusToWatch)
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, "alice", "100% Sakura", content.TypeManga, content.StatusToWatch)
	require.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "One Piece", content.TypeManga, content.StatusToWatch)
	require.NoError(t, err)

	t.Run("caps and orders by title", func(t *testing.T) {
		entries, err := repo.SearchByTitle(ctx, "alice", "piece", constants.SearchLimit)
		require.NoError(t, err)
		require.Len(t, entries, constants.SearchLimit)
		assert.Equal(t, "One Piece 01", entries[0].Title)
		assert.Equal(t, "One Piece 10", entries[9].Title)
		for _, entry := range entries {
			assert.Equal(t, "alice", entry.OwnerID)
		}
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		entries, err := repo.SearchByTitle(ctx, "alice", "0%", constants.SearchLimit)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "100% Sakura", entries[0].Title)

		entries, err = repo.SearchByTitle(ctx, "alice", "_", constants.SearchLimit)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("no match", func(t *testing.T) {
		entries, err := repo.SearchByTitle(ctx, "alice", "naruto", constants.SearchLimit)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestSQLiteRepository_SearchByTitleFoldsAccentedCase(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	for _, title := range []string{"Élite", "Classroom of the Elite", "À la folie"} {
		_, err := repo.Create(ctx, "alice", title, content.TypeSeries, content.StatusToWatch)
		require.NoError(t, err)
	}

	entries, err := repo.SearchByTitle(ctx, "alice", "élite", constants.SearchLimit)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Élite", entries[0].Title)

	entries, err = repo.SearchByTitle(ctx, "alice", "ÉLI", constants.SearchLimit)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = repo.SearchByTitle(ctx, "alice", "à LA", constants.SearchLimit)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "À la folie", entries[0].Title)

	entries, err = repo.SearchByTitle(ctx, "alice", "elite", constants.SearchLimit)
	require.NoError(t, err)
	require.Len(t, entries, 1, "accents are not stripped")
	assert.Equal(t, "Classroom of the Elite", entries[0].Title)
}

func TestSQLiteRepository_DeleteManyIgnoresForeignIDs(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	owners := []string{"alice", "alice", "bob"}
	ids := make([]int64, 0, len(owners))
	for i, owner := range owners {
		id, err := repo.Create(ctx, owner, fmt.Sprintf("T%d", i), content.TypeSeries, content.StatusToWatch)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	removed, err := repo.DeleteMany(ctx, ids, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := repo.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	removed, err = repo.DeleteMany(ctx, nil, "alice")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSQLiteRepository_Ping(t *testing.T) {
	assert.NoError(t, newSQLiteRepository(t).Ping(context.Background()))
}
