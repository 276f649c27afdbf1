package agent

import (
	"math/rand"

	"github.com/Abdur667/CS182-Final/internal/game"
)

func init() {
	Register("random", "settles any free node, builds at random", func(rng *rand.Rand) Agent {
		return &Random{rng: rng}
	})
}

// Random places on a uniformly random free node with a road touching it.
type Random struct {
	rng *rand.Rand
}

func (a *Random) ID() string { return "random" }

func (a *Random) Placement(g *game.Game) (int, int, bool) {
	return pickPlacement(g.Board(), a.rng, freeNodes(g.Board()))
}

func (a *Random) Build(g *game.Game) (Move, bool) {
	return randomBuild(g.Board(), a.rng, g.CurPlayer(), freeNodes(g.Board()))
}
