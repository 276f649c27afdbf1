package agent

import (
	"math/rand"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

func init() {
	Register("spread", "never settles on a tile it already touches", func(rng *rand.Rand) Agent {
		return &Spread{rng: rng}
	})
}

// Spread diversifies: each new settlement shares no tile with the player's
// earlier ones. It falls back to any free node when none qualifies.
type Spread struct {
	rng *rand.Rand
}

func (a *Spread) ID() string { return "spread" }

func (a *Spread) Placement(g *game.Game) (int, int, bool) {
	b := g.Board()
	if node, edge, ok := pickPlacement(b, a.rng, spreadNodes(b, g.CurPlayer())); ok {
		return node, edge, true
	}
	return pickPlacement(b, a.rng, freeNodes(b))
}

func (a *Spread) Build(g *game.Game) (Move, bool) {
	return randomBuild(g.Board(), a.rng, g.CurPlayer(), spreadNodes(g.Board(), g.CurPlayer()))
}

// spreadNodes returns free nodes touching none of the tiles p already
// touches with a settlement or city.
func spreadNodes(b *board.Board, p pieces.Player) []int {
	touched := make(map[int]bool)
	for _, pl := range b.PlayerToPieces()[p] {
		if pl.Piece.Type == pieces.Road {
			continue
		}
		for _, t := range hexgrid.TilesTouchingNode(pl.Location.Coord) {
			touched[t] = true
		}
	}

	var out []int
next:
	for _, n := range freeNodes(b) {
		for _, t := range hexgrid.TilesTouchingNode(n) {
			if touched[t] {
				continue next
			}
		}
		out = append(out, n)
	}
	return out
}
