package agent

import (
	"math/rand"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Move is one purchase: a piece type and where to put it.
type Move struct {
	Kind  pieces.Type
	Coord int
}

var buildings = []pieces.Type{pieces.Settlement, pieces.City}

func freeNodes(b *board.Board) []int {
	var out []int
	for _, n := range hexgrid.LegalNodeCoords() {
		if _, taken := b.PieceAt(buildings, n); !taken {
			out = append(out, n)
		}
	}
	return out
}

func freeEdgesAt(b *board.Board, node int) []int {
	var out []int
	for _, e := range hexgrid.EdgesTouchingNode(node) {
		if _, taken := b.PieceAt([]pieces.Type{pieces.Road}, e); !taken {
			out = append(out, e)
		}
	}
	return out
}

func freeEdges(b *board.Board) []int {
	var out []int
	for _, e := range hexgrid.LegalEdgeCoords() {
		if _, taken := b.PieceAt([]pieces.Type{pieces.Road}, e); !taken {
			out = append(out, e)
		}
	}
	return out
}

// ownSettlements returns the nodes where p has a settlement (not a city).
func ownSettlements(b *board.Board, p pieces.Player) []int {
	var out []int
	for _, pl := range b.PlayerToPieces()[p] {
		if pl.Piece.Type == pieces.Settlement {
			out = append(out, pl.Location.Coord)
		}
	}
	return out
}

// pickPlacement tries candidate nodes in random order and returns the first
// one with a free touching edge.
func pickPlacement(b *board.Board, rng *rand.Rand, nodes []int) (int, int, bool) {
	for _, i := range rng.Perm(len(nodes)) {
		edges := freeEdgesAt(b, nodes[i])
		if len(edges) > 0 {
			return nodes[i], edges[rng.Intn(len(edges))], true
		}
	}
	return 0, 0, false
}

func pick(rng *rand.Rand, xs []int) (int, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return xs[rng.Intn(len(xs))], true
}

// randomBuild chooses between a city upgrade, a settlement on one of nodes
// and a road, or nothing.
func randomBuild(b *board.Board, rng *rand.Rand, p pieces.Player, nodes []int) (Move, bool) {
	switch rng.Intn(4) {
	case 0:
		if n, ok := pick(rng, ownSettlements(b, p)); ok {
			return Move{Kind: pieces.City, Coord: n}, true
		}
	case 1:
		if n, ok := pick(rng, nodes); ok {
			return Move{Kind: pieces.Settlement, Coord: n}, true
		}
	case 2:
		if e, ok := pick(rng, freeEdges(b)); ok {
			return Move{Kind: pieces.Road, Coord: e}, true
		}
	}
	return Move{}, false
}
