package board

import (
	"fmt"
	"math/rand"

	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Layout selects how one aspect of the board is generated.
type Layout string

const (
	LayoutPreset Layout = "preset"
	LayoutRandom Layout = "random"
	LayoutEmpty  Layout = "empty"
)

// Options controls board generation.
type Options struct {
	Terrain Layout `yaml:"terrain"`
	Numbers Layout `yaml:"numbers"`
	Ports   Layout `yaml:"ports"`
}

// DefaultOptions returns the preset beginner board.
func DefaultOptions() Options {
	return Options{
		Terrain: LayoutPreset,
		Numbers: LayoutPreset,
		Ports:   LayoutPreset,
	}
}

// Validate checks that every layout is known.
func (o Options) Validate() error {
	for name, l := range map[string]Layout{"terrain": o.Terrain, "numbers": o.Numbers, "ports": o.Ports} {
		switch l {
		case LayoutPreset, LayoutRandom, LayoutEmpty:
		default:
			return fmt.Errorf("board: unknown %s layout %q", name, l)
		}
	}
	return nil
}

// presetTerrain is indexed by tile id - 1.
var presetTerrain = []Terrain{
	Wood, Wheat, Brick, Sheep, Brick, Sheep, Wheat, Wood, Ore, Wheat,
	Wood, Sheep, Ore, Wheat, Brick, Sheep, Ore, Wood, Desert,
}

// presetNumbers are dealt to non-desert tiles in tile id order.
var presetNumbers = []int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11}

var presetPorts = []Port{
	{TileID: 1, Direction: hexgrid.NorthWest, Type: PortAny3},
	{TileID: 2, Direction: hexgrid.West, Type: PortWood2},
	{TileID: 4, Direction: hexgrid.West, Type: PortBrick2},
	{TileID: 5, Direction: hexgrid.SouthWest, Type: PortAny3},
	{TileID: 6, Direction: hexgrid.SouthEast, Type: PortAny3},
	{TileID: 8, Direction: hexgrid.SouthEast, Type: PortSheep2},
	{TileID: 9, Direction: hexgrid.East, Type: PortAny3},
	{TileID: 10, Direction: hexgrid.NorthEast, Type: PortOre2},
	{TileID: 12, Direction: hexgrid.NorthEast, Type: PortWheat2},
}

// New builds a board. rng is only used by random layouts and may be nil
// otherwise. The robber is set up on the first desert tile.
func New(opts Options, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	terrain := make([]Terrain, len(presetTerrain))
	switch opts.Terrain {
	case LayoutRandom:
		copy(terrain, presetTerrain)
		rng.Shuffle(len(terrain), func(i, j int) { terrain[i], terrain[j] = terrain[j], terrain[i] })
	case LayoutEmpty:
		// all desert
	default:
		copy(terrain, presetTerrain)
	}

	numbers := make([]int, len(presetNumbers))
	copy(numbers, presetNumbers)
	if opts.Numbers == LayoutRandom {
		rng.Shuffle(len(numbers), func(i, j int) { numbers[i], numbers[j] = numbers[j], numbers[i] })
	}

	b := &Board{pieces: make(map[Location]pieces.Piece)}
	next := 0
	for _, id := range hexgrid.TileIDs() {
		tile := Tile{ID: id, Terrain: terrain[id-1]}
		if tile.Terrain != Desert && opts.Numbers != LayoutEmpty && next < len(numbers) {
			tile.Number = numbers[next]
			next++
		}
		b.Tiles = append(b.Tiles, tile)
	}

	switch opts.Ports {
	case LayoutEmpty:
	case LayoutRandom:
		b.Ports = make([]Port, len(presetPorts))
		copy(b.Ports, presetPorts)
		rng.Shuffle(len(b.Ports), func(i, j int) { b.Ports[i].Type, b.Ports[j].Type = b.Ports[j].Type, b.Ports[i].Type })
	default:
		b.Ports = make([]Port, len(presetPorts))
		copy(b.Ports, presetPorts)
	}

	for _, t := range b.Tiles {
		if t.Terrain == Desert {
			coord, _ := hexgrid.TileCoord(t.ID)
			// The board is unlocked here, so this cannot fail.
			_ = b.PlacePiece(pieces.NewRobber(), coord)
			break
		}
	}
	return b
}
