package game

import (
	"time"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Report summarizes a finished game for scoring and display.
type Report struct {
	Winner  pieces.Player
	Players []pieces.Player
	Turns   int
	Points  map[pieces.Player]int
	// Pieces is the final ownership map of the board.
	Pieces map[pieces.Player][]board.Placement
	// Resources lists the terrain of every tile next to a player's
	// settlements, twice for cities.
	Resources map[pieces.Player][]board.Terrain
	EndedAt   time.Time
}

func (g *Game) evaluateFinal(winner pieces.Player) *Report {
	r := &Report{
		Winner:    winner,
		Players:   append([]pieces.Player(nil), g.players...),
		Turns:     g.turn,
		Points:    make(map[pieces.Player]int, len(g.players)),
		Pieces:    g.board.PlayerToPieces(),
		Resources: make(map[pieces.Player][]board.Terrain, len(g.players)),
		EndedAt:   g.clock.Now(),
	}
	for _, p := range g.players {
		r.Points[p] = g.VictoryPoints(p)
	}

	for owner, placements := range r.Pieces {
		for _, pl := range placements {
			yield := 0
			switch pl.Piece.Type {
			case pieces.Settlement:
				yield = 1
			case pieces.City:
				yield = 2
			default:
				continue
			}
			for _, id := range hexgrid.TilesTouchingNode(pl.Location.Coord) {
				tile, ok := g.board.Tile(id)
				if !ok {
					continue
				}
				for range yield {
					r.Resources[owner] = append(r.Resources[owner], tile.Terrain)
				}
			}
		}
	}
	return r
}

// ResourceCounts tallies Resources per terrain for p, desert excluded.
func (r *Report) ResourceCounts(p pieces.Player) map[board.Resource]int {
	out := make(map[board.Resource]int)
	for _, t := range r.Resources[p] {
		if res, ok := t.Resource(); ok {
			out[res]++
		}
	}
	return out
}
