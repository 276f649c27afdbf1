// Package hexgrid provides the coordinate system for the 19-tile board.
//
// Tiles, nodes and edges share one integer coordinate space: the high nibble
// is the column and the low nibble the row of a skewed hex layout. Because
// node and edge coordinates overlap numerically, a coordinate is only
// meaningful together with its Kind.
package hexgrid

import (
	"fmt"
	"slices"
)

// Kind identifies what a coordinate refers to.
type Kind int

const (
	Edge Kind = iota
	Node
	Tile
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Edge:
		return "edge"
	case Node:
		return "node"
	case Tile:
		return "tile"
	default:
		return "unknown"
	}
}

// Direction is a compass direction relative to a tile.
type Direction string

const (
	North     Direction = "N"
	NorthEast Direction = "NE"
	East      Direction = "E"
	SouthEast Direction = "SE"
	South     Direction = "S"
	SouthWest Direction = "SW"
	West      Direction = "W"
	NorthWest Direction = "NW"
)

type offset struct {
	delta int
	dir   Direction
}

// Tile ids run 1..19 clockwise from the top-left tile, spiralling inward.
var tileIDToCoord = map[int]int{
	1: 0x37, 12: 0x59, 11: 0x7B,
	2: 0x35, 13: 0x57, 18: 0x79, 10: 0x9B,
	3: 0x33, 14: 0x55, 19: 0x77, 17: 0x99, 9: 0xBB,
	4: 0x53, 15: 0x75, 16: 0x97, 8: 0xB9,
	5: 0x73, 6: 0x95, 7: 0xB7,
}

var tileNodeOffsets = []offset{
	{+0x01, North},
	{+0x12, NorthEast},
	{+0x21, SouthEast},
	{+0x10, South},
	{-0x01, SouthWest},
	{-0x10, NorthWest},
}

var tileEdgeOffsets = []offset{
	{+0x01, NorthEast},
	{+0x11, East},
	{+0x10, SouthEast},
	{-0x01, SouthWest},
	{-0x11, West},
	{-0x10, NorthWest},
}

var (
	tileCoordToID   map[int]int
	legalNodeCoords []int
	legalEdgeCoords []int
	legalNodeSet    map[int]bool
	legalEdgeSet    map[int]bool
)

func init() {
	tileCoordToID = make(map[int]int, len(tileIDToCoord))
	legalNodeSet = make(map[int]bool)
	legalEdgeSet = make(map[int]bool)
	for id, coord := range tileIDToCoord {
		tileCoordToID[coord] = id
		for _, o := range tileNodeOffsets {
			legalNodeSet[coord+o.delta] = true
		}
		for _, o := range tileEdgeOffsets {
			legalEdgeSet[coord+o.delta] = true
		}
	}
	for c := range legalNodeSet {
		legalNodeCoords = append(legalNodeCoords, c)
	}
	for c := range legalEdgeSet {
		legalEdgeCoords = append(legalEdgeCoords, c)
	}
	slices.Sort(legalNodeCoords)
	slices.Sort(legalEdgeCoords)
}

// TileIDs returns the legal tile ids in ascending order.
func TileIDs() []int {
	ids := make([]int, 0, len(tileIDToCoord))
	for id := 1; id <= len(tileIDToCoord); id++ {
		ids = append(ids, id)
	}
	return ids
}

// IsTileID reports whether id names a tile on the board.
func IsTileID(id int) bool {
	_, ok := tileIDToCoord[id]
	return ok
}

// TileCoord returns the coordinate of a tile id.
func TileCoord(id int) (int, bool) {
	c, ok := tileIDToCoord[id]
	return c, ok
}

// TileIDFromCoord returns the tile id at a tile coordinate.
func TileIDFromCoord(coord int) (int, bool) {
	id, ok := tileCoordToID[coord]
	return id, ok
}

// LegalNodeCoords returns all node coordinates on the board, sorted.
func LegalNodeCoords() []int {
	return slices.Clone(legalNodeCoords)
}

// LegalEdgeCoords returns all edge coordinates on the board, sorted.
func LegalEdgeCoords() []int {
	return slices.Clone(legalEdgeCoords)
}

// IsLegal reports whether coord is a legal coordinate of the given kind.
func IsLegal(kind Kind, coord int) bool {
	switch kind {
	case Node:
		return legalNodeSet[coord]
	case Edge:
		return legalEdgeSet[coord]
	case Tile:
		_, ok := tileCoordToID[coord]
		return ok
	default:
		return false
	}
}

// NodesTouchingTile returns the six corner nodes of a tile, clockwise from north.
func NodesTouchingTile(tileID int) []int {
	coord, ok := tileIDToCoord[tileID]
	if !ok {
		return nil
	}
	nodes := make([]int, 0, len(tileNodeOffsets))
	for _, o := range tileNodeOffsets {
		nodes = append(nodes, coord+o.delta)
	}
	return nodes
}

// EdgesTouchingTile returns the six sides of a tile, clockwise from north-east.
func EdgesTouchingTile(tileID int) []int {
	coord, ok := tileIDToCoord[tileID]
	if !ok {
		return nil
	}
	edges := make([]int, 0, len(tileEdgeOffsets))
	for _, o := range tileEdgeOffsets {
		edges = append(edges, coord+o.delta)
	}
	return edges
}

// NodesTouchingEdge returns the two endpoints of an edge.
func NodesTouchingEdge(edge int) []int {
	a, b := edge>>4, edge&0x0F
	if a%2 == 0 && b%2 == 0 {
		return []int{a<<4 | (b + 1), (a+1)<<4 | b}
	}
	return []int{edge, (a+1)<<4 | (b + 1)}
}

// EdgesTouchingNode returns the legal edges that end at node, sorted.
func EdgesTouchingNode(node int) []int {
	var edges []int
	for _, e := range legalEdgeCoords {
		if slices.Contains(NodesTouchingEdge(e), node) {
			edges = append(edges, e)
		}
	}
	return edges
}

// TilesTouchingNode returns the ids of the one to three tiles sharing node, sorted.
func TilesTouchingNode(node int) []int {
	var tiles []int
	for _, o := range tileNodeOffsets {
		if id, ok := tileCoordToID[node-o.delta]; ok {
			tiles = append(tiles, id)
		}
	}
	slices.Sort(tiles)
	return tiles
}

// TilesTouchingEdge returns the ids of the one or two tiles sharing edge, sorted.
func TilesTouchingEdge(edge int) []int {
	var tiles []int
	for _, o := range tileEdgeOffsets {
		if id, ok := tileCoordToID[edge-o.delta]; ok {
			tiles = append(tiles, id)
		}
	}
	slices.Sort(tiles)
	return tiles
}

// EdgeInDirection returns the edge on the given side of a tile.
func EdgeInDirection(tileID int, dir Direction) (int, bool) {
	coord, ok := tileIDToCoord[tileID]
	if !ok {
		return 0, false
	}
	for _, o := range tileEdgeOffsets {
		if o.dir == dir {
			return coord + o.delta, true
		}
	}
	return 0, false
}

// Location renders a coordinate in canonical form. Tiles render as their id;
// nodes and edges render relative to the lowest-numbered tile they touch,
// e.g. "(1 NW)".
func Location(kind Kind, coord int) string {
	switch kind {
	case Tile:
		if id, ok := tileCoordToID[coord]; ok {
			return fmt.Sprintf("%d", id)
		}
	case Node:
		if tiles := TilesTouchingNode(coord); len(tiles) > 0 {
			return fmt.Sprintf("(%d %s)", tiles[0], direction(tileNodeOffsets, coord-tileIDToCoord[tiles[0]]))
		}
	case Edge:
		if tiles := TilesTouchingEdge(coord); len(tiles) > 0 {
			return fmt.Sprintf("(%d %s)", tiles[0], direction(tileEdgeOffsets, coord-tileIDToCoord[tiles[0]]))
		}
	}
	return fmt.Sprintf("(%s 0x%02X)", kind, coord)
}

// TileLocation renders a tile id in canonical form.
func TileLocation(tileID int) string {
	return fmt.Sprintf("%d", tileID)
}

func direction(offsets []offset, delta int) Direction {
	for _, o := range offsets {
		if o.delta == delta {
			return o.dir
		}
	}
	return ""
}
