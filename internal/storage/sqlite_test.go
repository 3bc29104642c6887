package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Open() failed")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err, "Open() with nested path failed")
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.ladders/test.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".ladders", "test.db"))
	assert.NoError(t, err)
}

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)

	games := []ResultEntry{
		{Layout: "classic", Winner: "Ann", WinnerColor: "red", Turns: 30, Players: 2},
		{Layout: "classic", Winner: "CPU", WinnerColor: "blue", WinnerBot: true, Turns: 12, Players: 2, Bots: 1},
		{Layout: "quick", Winner: "Ann", WinnerColor: "red", Turns: 8, Players: 3, Bots: 1},
	}
	for _, g := range games {
		_, err := store.SaveResult(g)
		require.NoError(t, err, "SaveResult() failed")
	}

	recent, err := store.RecentResults(10)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Same-second inserts fall back to id ordering, newest first
	assert.Equal(t, "quick", recent[0].Layout)
	assert.Equal(t, 8, recent[0].Turns)
	assert.True(t, recent[1].WinnerBot)
	assert.False(t, recent[2].CreatedAt.IsZero())

	for _, r := range recent {
		_, err := uuid.Parse(r.GameID)
		assert.NoError(t, err, "game id should be a UUID")
	}

	limited, err := store.RecentResults(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSaveResultKeepsGameID(t *testing.T) {
	store := openTestStore(t)
	id := NewGameID()

	_, err := store.SaveResult(ResultEntry{GameID: id, Layout: "classic", Winner: "Bo", WinnerColor: "green", Turns: 20, Players: 2})
	require.NoError(t, err)

	got, err := store.ResultByGameID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bo", got.Winner)
	assert.Equal(t, 20, got.Turns)

	// A game id is recorded once
	_, err = store.SaveResult(ResultEntry{GameID: id, Layout: "classic", Winner: "Bo", WinnerColor: "green", Turns: 20, Players: 2})
	assert.Error(t, err)

	missing, err := store.ResultByGameID(NewGameID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveResultRejectsBadGameID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(ResultEntry{GameID: "not-a-uuid", Winner: "x"})
	assert.Error(t, err)
}

func TestLeaderboard(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []ResultEntry{
		{Winner: "Ann", Turns: 30},
		{Winner: "Ann", Turns: 18},
		{Winner: "Bo", Turns: 10},
		{Winner: "CPU", Turns: 25, WinnerBot: true},
		{Winner: "Bo", Turns: 40},
		{Winner: "Cy", Turns: 5},
	} {
		r.Layout, r.WinnerColor, r.Players = "classic", "red", 2
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	board, err := store.Leaderboard(10)
	require.NoError(t, err)
	require.Len(t, board, 4)

	// Two wins each: Bo has the faster best game
	assert.Equal(t, "Bo", board[0].Name)
	assert.Equal(t, 2, board[0].Wins)
	assert.Equal(t, 10, board[0].BestTurns)
	assert.Equal(t, "Ann", board[1].Name)
	assert.Equal(t, 18, board[1].BestTurns)
	assert.Equal(t, "Cy", board[2].Name)
	assert.False(t, board[0].LastWin.IsZero())

	top, err := store.Leaderboard(1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Games)
	assert.Equal(t, "", empty.FastestID)

	for _, r := range []ResultEntry{
		{Winner: "Ann", Turns: 20},
		{Winner: "CPU", Turns: 10, WinnerBot: true},
	} {
		r.Layout, r.WinnerColor, r.Players = "classic", "red", 2
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	stats, err := store.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Games)
	assert.InDelta(t, 15.0, stats.AvgTurns, 0.001)
	assert.Equal(t, 1, stats.BotWins)
	assert.Equal(t, 10, stats.Fastest)
	assert.NotEmpty(t, stats.FastestID)
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(ResultEntry{Layout: "classic", Winner: "Ann", WinnerColor: "red", Turns: 9, Players: 2})
	require.NoError(t, err)
	require.NoError(t, store.ClearResults())

	recent, err := store.RecentResults(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestSaveSlot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, _, err := store.ReadSlot(ctx, "default")
	require.ErrorIs(t, err, ErrNoSlot)

	require.NoError(t, store.WriteSlot(ctx, "default", []byte(`{"turn": 1}`)))
	data, at, err := store.ReadSlot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, `{"turn": 1}`, string(data))
	assert.False(t, at.IsZero())

	// Overwrite replaces the single row
	require.NoError(t, store.WriteSlot(ctx, "default", []byte(`{"turn": 2}`)))
	data, _, err = store.ReadSlot(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, `{"turn": 2}`, string(data))

	// Other names are independent
	_, _, err = store.ReadSlot(ctx, "other")
	assert.ErrorIs(t, err, ErrNoSlot)

	require.NoError(t, store.DeleteSlot(ctx, "default"))
	_, _, err = store.ReadSlot(ctx, "default")
	assert.ErrorIs(t, err, ErrNoSlot)
	assert.NoError(t, store.DeleteSlot(ctx, "default"), "deleting an empty slot is fine")
}
