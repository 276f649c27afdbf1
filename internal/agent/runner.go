package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// DefaultMaxSteps bounds how many actions Run issues before giving up.
const DefaultMaxSteps = 100_000

// ErrNoProgress is returned when an agent has no legal move or the game
// does not finish within the step limit.
var ErrNoProgress = errors.New("agent: game made no progress")

// Runner drives a started game to completion. Dice, robber moves and steals
// are decided here; agents only choose placements and purchases.
type Runner struct {
	Game     *game.Game
	Agents   map[pieces.Player]Agent
	Rng      *rand.Rand
	Logger   *log.Logger
	MaxSteps int
}

// Run plays until the game leaves the in-game states. It returns the
// number of actions taken.
func (r *Runner) Run(ctx context.Context) (int, error) {
	r.defaults()
	maxSteps := r.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	steps := 0
	for r.Game.IsInGame() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if steps >= maxSteps {
			return steps, fmt.Errorf("%w: %d steps without an end", ErrNoProgress, steps)
		}
		if err := r.step(); err != nil {
			return steps, err
		}
		steps++
	}
	r.Logger.Debug("game finished", "steps", steps)
	return steps, nil
}

func (r *Runner) agent() (Agent, error) {
	p := r.Game.CurPlayer()
	a, ok := r.Agents[p]
	if !ok {
		return nil, fmt.Errorf("agent: no agent seated for %s", p)
	}
	return a, nil
}

func (r *Runner) defaults() {
	if r.Rng == nil {
		r.Rng = rand.New(rand.NewSource(0))
	}
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}
}

// Step advances the game by one decision. A pregame settlement and its
// road count as one decision. Step does nothing once the game has ended.
func (r *Runner) Step() error {
	if !r.Game.IsInGame() {
		return nil
	}
	r.defaults()
	return r.step()
}

// step performs exactly one action for the current state.
func (r *Runner) step() error {
	g := r.Game
	switch s := g.State().(type) {
	case game.PreGamePlacingPiece:
		if s.Kind == pieces.Road {
			e, ok := pick(r.Rng, freeEdges(g.Board()))
			if !ok {
				return fmt.Errorf("%w: no free edge", ErrNoProgress)
			}
			return g.PlaceRoad(e)
		}
		a, err := r.agent()
		if err != nil {
			return err
		}
		node, edge, ok := a.Placement(g)
		if !ok {
			return fmt.Errorf("%w: %s has no placement for %s", ErrNoProgress, a.ID(), g.CurPlayer())
		}
		if err := g.PlaceSettlement(node); err != nil {
			return err
		}
		return g.PlaceRoad(edge)

	case game.BeginTurn:
		return g.Roll(r.Rng.Intn(6) + r.Rng.Intn(6) + 2)

	case game.MoveRobber:
		if s.Moved {
			return g.Steal(r.victim())
		}
		return g.MoveRobber(r.robberTarget())

	case game.MoveRobberUsingKnight:
		if s.Moved {
			return g.Steal(r.victim())
		}
		return g.MoveRobber(r.robberTarget())

	case game.PlacingPiece:
		if s.Kind == pieces.Road {
			if e, ok := pick(r.Rng, freeEdges(g.Board())); ok {
				return g.PlaceRoad(e)
			}
		}
		return g.CancelPlacing()

	case game.DuringTurnAfterRoll:
		a, err := r.agent()
		if err != nil {
			return err
		}
		if move, ok := a.Build(g); ok {
			r.build(move)
		}
		return g.EndTurn()

	default:
		return fmt.Errorf("agent: cannot drive state %s", s)
	}
}

// build applies a purchase. A rejected placement is abandoned; the turn
// goes on.
func (r *Runner) build(m Move) {
	g := r.Game
	if err := g.BeginPlacing(m.Kind); err != nil {
		r.Logger.Warn("begin placing", "kind", m.Kind, "err", err)
		return
	}

	var err error
	switch m.Kind {
	case pieces.Road:
		err = g.PlaceRoad(m.Coord)
	case pieces.Settlement:
		err = g.PlaceSettlement(m.Coord)
	case pieces.City:
		err = g.PlaceCity(m.Coord)
	}
	if err != nil {
		r.Logger.Debug("placement rejected", "kind", m.Kind, "coord", fmt.Sprintf("0x%02X", m.Coord), "err", err)
		if cerr := g.CancelPlacing(); cerr != nil {
			r.Logger.Warn("cancel placing", "err", cerr)
		}
	}
}

func (r *Runner) robberTarget() int {
	var tiles []int
	for _, id := range hexgrid.TileIDs() {
		if id != r.Game.RobberTile() {
			tiles = append(tiles, id)
		}
	}
	return tiles[r.Rng.Intn(len(tiles))]
}

func (r *Runner) victim() pieces.Player {
	stealable := r.Game.StealablePlayers()
	if len(stealable) == 0 {
		return pieces.Nobody
	}
	return stealable[r.Rng.Intn(len(stealable))]
}

// Seat pairs players with agents by id, in order.
func Seat(players []pieces.Player, agentIDs []string, rng *rand.Rand) (map[pieces.Player]Agent, error) {
	if len(players) != len(agentIDs) {
		return nil, fmt.Errorf("agent: %d players but %d agents", len(players), len(agentIDs))
	}
	out := make(map[pieces.Player]Agent, len(players))
	for i, p := range players {
		a, err := Create(agentIDs[i], rng)
		if err != nil {
			return nil, err
		}
		out[p] = a
	}
	return out, nil
}

// InitialGrant returns an OnInitialPlacement hook that reports the
// resources a second pregame settlement at node would collect.
func InitialGrant(b *board.Board, grant func(p pieces.Player, rs []board.Resource)) func(pieces.Player, int) {
	return func(p pieces.Player, node int) {
		var rs []board.Resource
		for _, id := range hexgrid.TilesTouchingNode(node) {
			tile, ok := b.Tile(id)
			if !ok {
				continue
			}
			if res, ok := tile.Terrain.Resource(); ok {
				rs = append(rs, res)
			}
		}
		grant(p, rs)
	}
}
