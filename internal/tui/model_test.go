package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdur667/CS182-Final/internal/config"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

func newViewer(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Game.PregameOnly = true

	m, err := NewModel(Options{
		Config:   cfg,
		Seed:     5,
		Interval: 100 * time.Millisecond,
		Store:    store,
		Clock:    quartz.NewMock(t),
		Width:    100,
		Height:   40,
	})
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := send(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticking continues")
	return m
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	switch k {
	case "left":
		return send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		return send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	default:
		return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func placements(m Model) int {
	return len(m.Game().Board().Placements())
}

func TestTickStepsGame(t *testing.T) {
	m := newViewer(t, nil)
	assert.NotNil(t, m.Init())
	assert.Zero(t, placements(m))

	m = tick(t, m)
	assert.Equal(t, 2, placements(m), "one draft pick is a settlement and a road")
	assert.Contains(t, m.feed.log.String(), "green (abdur) buys settlement")
	assert.Contains(t, m.logView.View(), "green (abdur) buys settlement")
}

func TestPauseStopsTicks(t *testing.T) {
	m := newViewer(t, nil)
	m, _ = press(t, m, "p")
	require.True(t, m.Paused())

	m = tick(t, m)
	assert.Zero(t, placements(m))
	assert.Contains(t, m.View(), "paused")

	m, _ = press(t, m, "p")
	assert.False(t, m.Paused())
}

func TestUndoAndRedoKeys(t *testing.T) {
	m := newViewer(t, nil)
	m = tick(t, m)
	m = tick(t, m)
	require.Equal(t, 4, placements(m))

	m, _ = press(t, m, "left")
	assert.True(t, m.Paused(), "undo pauses")
	assert.Equal(t, 3, placements(m))

	m, _ = press(t, m, "right")
	assert.Equal(t, 4, placements(m), "redo first")
	assert.False(t, m.Game().CanRedo())

	m, _ = press(t, m, "right")
	assert.Equal(t, 6, placements(m), "then step")
}

func TestFinishedGameIsStoredOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newViewer(t, store)
	for range 8 {
		m = tick(t, m)
	}
	require.False(t, m.Game().IsInGame())
	assert.NotEmpty(t, m.savedID)
	assert.Contains(t, m.View(), "wins")

	m = tick(t, m)
	m, _ = press(t, m, "left")
	m, _ = press(t, m, "right")
	m = tick(t, m)

	games, err := store.RecentGames(10)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, m.savedID, games[0].ID)
	assert.Equal(t, int64(5), games[0].Seed)
}

func TestRestartUsesNextSeed(t *testing.T) {
	m := newViewer(t, nil)
	m = tick(t, m)

	m, _ = press(t, m, "r")
	assert.Equal(t, int64(6), m.Seed())
	assert.Zero(t, placements(m))
	assert.Contains(t, m.feed.log.String(), "...CATAN!")
	assert.NotContains(t, m.feed.log.String(), "buys", "the new log holds only the header")
	assert.Contains(t, m.View(), "seed 6")
}

func TestSpeedKeys(t *testing.T) {
	m := newViewer(t, nil)

	m, _ = press(t, m, "+")
	assert.Contains(t, m.View(), "every 50ms")

	for range 20 {
		m, _ = press(t, m, "-")
	}
	assert.Contains(t, m.View(), "every 5s")
}

func TestQuit(t *testing.T) {
	m := newViewer(t, nil)
	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, m.View())
}

func TestResizeKeepsLogVisible(t *testing.T) {
	m := newViewer(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})
	assert.Equal(t, 60, m.logView.Width)
	assert.GreaterOrEqual(t, m.logView.Height, 3)
}
