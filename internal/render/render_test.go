package render

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

func finishedGame(t *testing.T) *game.Report {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	g := game.New(nil, game.Options{
		PregameOnly: true,
		Clock:       clock,
		Logger:      log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	})
	require.NoError(t, g.Start(game.DebugPlayers()))
	for _, node := range []int{0x38, 0x49, 0x36, 0x47, 0x25, 0x83, 0x74, 0x58} {
		require.NoError(t, g.PlaceSettlement(node))
		require.NoError(t, g.PlaceRoad(node))
	}
	rep, ok := g.Report()
	require.True(t, ok)
	return rep
}

func TestBoardPlain(t *testing.T) {
	out := Board(board.New(board.DefaultOptions(), nil), false)

	assert.NotContains(t, out, "\x1b[", "plain output has no escape codes")
	assert.Contains(t, out, "  1     wood     5")
	assert.Contains(t, out, "  19    desert   -   R")
	assert.Contains(t, out, "1 NW     3:1")
	assert.Contains(t, out, "2 W      2:1 wood")
}

func TestReportPlain(t *testing.T) {
	out := Report(finishedGame(t), false)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "green (abdur) wins after 8 turns")
	assert.Contains(t, out, "ended 2024-03-01 12:00:00")

	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "2/0/2") {
			rows = append(rows, l)
		}
	}
	assert.Len(t, rows, 4, "one row per player with two settlements and two roads")
	assert.Contains(t, out, "wood 2, sheep 1, ore 1")
}

func TestGamesAndStatsPlain(t *testing.T) {
	ended := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	records := []storage.GameRecord{{
		ID:      "0190a1b2-0000-7000-8000-000000000000",
		Turns:   57,
		EndedAt: ended,
		Winner:  storage.PlayerResult{Seat: 2, Name: "qlearn", Color: "blue", Points: 10},
		Players: []storage.PlayerResult{
			{Seat: 1, Points: 6}, {Seat: 2, Points: 10}, {Seat: 3, Points: 4}, {Seat: 4, Points: 7},
		},
	}}
	out := Games(records, false)
	assert.Contains(t, out, "0190a1b2-0000-7000-8000-000000000000  2024-03-01 12:00  57     blue (qlearn)")
	assert.Contains(t, out, "6/10/4/7")

	out = Stats([]storage.PlayerStats{{Name: "qlearn", Games: 3, Wins: 2, AvgPoints: 8.5, LastPlay: ended}}, false)
	assert.Contains(t, out, "qlearn        3      2     8.50")
}

func TestStyledOutputKeepsText(t *testing.T) {
	out := Report(finishedGame(t), true)
	assert.Contains(t, out, "abdur")
	assert.Contains(t, out, "after 8 turns")
}
