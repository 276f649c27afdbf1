package board

import "github.com/Abdur667/CS182-Final/internal/hexgrid"

// Terrain is the land type of a tile.
type Terrain int

const (
	Desert Terrain = iota
	Wood
	Brick
	Wheat
	Sheep
	Ore
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case Desert:
		return "desert"
	case Wood:
		return "wood"
	case Brick:
		return "brick"
	case Wheat:
		return "wheat"
	case Sheep:
		return "sheep"
	case Ore:
		return "ore"
	default:
		return "unknown"
	}
}

// Resource is a tradeable card type.
type Resource int

const (
	ResourceWood Resource = iota + 1
	ResourceBrick
	ResourceWheat
	ResourceSheep
	ResourceOre
)

// String returns the resource name.
func (r Resource) String() string {
	switch r {
	case ResourceWood:
		return "wood"
	case ResourceBrick:
		return "brick"
	case ResourceWheat:
		return "wheat"
	case ResourceSheep:
		return "sheep"
	case ResourceOre:
		return "ore"
	default:
		return "unknown"
	}
}

// Resource returns the resource a terrain produces. Desert produces nothing.
func (t Terrain) Resource() (Resource, bool) {
	switch t {
	case Wood:
		return ResourceWood, true
	case Brick:
		return ResourceBrick, true
	case Wheat:
		return ResourceWheat, true
	case Sheep:
		return ResourceSheep, true
	case Ore:
		return ResourceOre, true
	default:
		return 0, false
	}
}

// Tile is a hex cell. Number is 0 when the tile has no number token.
type Tile struct {
	ID      int
	Terrain Terrain
	Number  int
}

// PortType is the trade ratio offered by a port.
type PortType int

const (
	PortAny3 PortType = iota
	PortWood2
	PortBrick2
	PortWheat2
	PortSheep2
	PortOre2
)

// String returns the port name as written in game logs.
func (p PortType) String() string {
	switch p {
	case PortAny3:
		return "3:1"
	case PortWood2:
		return "2:1 wood"
	case PortBrick2:
		return "2:1 brick"
	case PortWheat2:
		return "2:1 wheat"
	case PortSheep2:
		return "2:1 sheep"
	case PortOre2:
		return "2:1 ore"
	default:
		return "unknown"
	}
}

// Port is a harbor on one coastal side of a tile.
type Port struct {
	TileID    int
	Direction hexgrid.Direction
	Type      PortType
}

// Edge returns the edge coordinate the port sits on.
func (p Port) Edge() (int, bool) {
	return hexgrid.EdgeInDirection(p.TileID, p.Direction)
}
