package agent

import (
	"context"
	"io"
	"math/rand"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newRunner(t *testing.T, opts game.Options, agentID string, seed int64) *Runner {
	t.Helper()
	opts.Logger = quietLogger()
	g := game.New(nil, opts)
	players := game.DebugPlayers()
	require.NoError(t, g.Start(players))

	rng := rand.New(rand.NewSource(seed))
	ids := make([]string, len(players))
	for i := range ids {
		ids[i] = agentID
	}
	agents, err := Seat(players, ids, rng)
	require.NoError(t, err)
	return &Runner{Game: g, Agents: agents, Rng: rng, Logger: quietLogger()}
}

func TestRegistry(t *testing.T) {
	ids := make([]string, 0)
	for _, info := range List() {
		ids = append(ids, info.ID)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{"random", "spread"}, ids)

	assert.True(t, Exists("random"))
	assert.False(t, Exists("qlearn"))

	_, err := Create("qlearn", nil)
	assert.Error(t, err)

	a, err := Create("spread", nil)
	require.NoError(t, err)
	assert.Equal(t, "spread", a.ID())
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("random", "again", func(*rand.Rand) Agent { return nil })
	})
}

func TestRandomPlacementIsLegal(t *testing.T) {
	g := game.New(nil, game.Options{Logger: quietLogger()})
	require.NoError(t, g.Start(game.DebugPlayers()))
	require.NoError(t, g.PlaceSettlement(0x38))
	require.NoError(t, g.PlaceRoad(0x38))

	a, err := Create("random", rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	for range 20 {
		node, edge, ok := a.Placement(g)
		require.True(t, ok)
		assert.NotEqual(t, 0x38, node)
		assert.Contains(t, hexgrid.EdgesTouchingNode(node), edge)
	}
}

func TestSpreadAvoidsOwnTiles(t *testing.T) {
	r := newRunner(t, game.Options{PregameOnly: true}, "spread", 11)
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	report, ok := r.Game.Report()
	require.True(t, ok)
	for _, p := range report.Players {
		var tiles []int
		for _, pl := range report.Pieces[p] {
			if pl.Piece.Type != pieces.Settlement {
				continue
			}
			for _, id := range hexgrid.TilesTouchingNode(pl.Location.Coord) {
				assert.False(t, slices.Contains(tiles, id), "%s settles twice on tile %d", p, id)
				tiles = append(tiles, id)
			}
		}
	}
}

func TestRunnerPlaysFullGame(t *testing.T) {
	for _, id := range []string{"random", "spread"} {
		t.Run(id, func(t *testing.T) {
			r := newRunner(t, game.Options{MaxTurns: 500}, id, 42)
			steps, err := r.Run(context.Background())
			require.NoError(t, err)
			assert.Positive(t, steps)

			g := r.Game
			assert.Equal(t, game.NotInGame{}, g.State())
			assert.False(t, g.Board().Locked())

			report, ok := g.Report()
			require.True(t, ok)
			assert.GreaterOrEqual(t, report.Turns, 8, "the draft always completes")
			assert.True(t,
				report.Points[report.Winner] >= game.DefaultVictoryPoints || report.Turns >= 500,
				"game ended for a reason: %+v", report.Points)
		})
	}
}

func TestRunnerIsUndoable(t *testing.T) {
	r := newRunner(t, game.Options{PregameOnly: true}, "random", 5)
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	for r.Game.CanUndo() {
		require.NoError(t, r.Game.Undo())
	}
	assert.Equal(t, game.NotInGame{}, r.Game.State())
	assert.Empty(t, r.Game.Board().Placements())
}

func TestRunnerStopsOnCancel(t *testing.T) {
	r := newRunner(t, game.Options{}, "random", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	steps, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, steps)
}

func TestRunnerStepLimit(t *testing.T) {
	r := newRunner(t, game.Options{}, "random", 1)
	r.MaxSteps = 3

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoProgress)
}

func TestRunnerStep(t *testing.T) {
	r := newRunner(t, game.Options{PregameOnly: true}, "random", 9)

	require.NoError(t, r.Step())
	assert.Len(t, r.Game.Board().Placements(), 2, "settlement and road")
	assert.Equal(t, game.DebugPlayers()[1], r.Game.CurPlayer())

	for r.Game.IsInGame() {
		require.NoError(t, r.Step())
	}
	assert.Len(t, r.Game.Board().Placements(), 16)
	assert.NoError(t, r.Step(), "stepping a finished game does nothing")
}

func TestRunnerNeedsAgentForEverySeat(t *testing.T) {
	r := newRunner(t, game.Options{}, "random", 1)
	delete(r.Agents, r.Game.CurPlayer())

	_, err := r.Run(context.Background())
	assert.Error(t, err)
}

func TestSeatValidatesCounts(t *testing.T) {
	_, err := Seat(game.DebugPlayers(), []string{"random"}, nil)
	assert.Error(t, err)

	_, err = Seat(game.DebugPlayers()[:1], []string{"nope"}, nil)
	assert.Error(t, err)
}

func TestInitialGrant(t *testing.T) {
	b := board.New(board.DefaultOptions(), nil)
	var got []board.Resource
	hook := InitialGrant(b, func(p pieces.Player, rs []board.Resource) { got = rs })

	hook(game.DebugPlayers()[0], 0x58)
	assert.ElementsMatch(t, []board.Resource{board.ResourceWood, board.ResourceSheep, board.ResourceOre}, got)
}
