// Package board holds the tiles, ports and placed pieces of a game and
// validates placements. Board is a pure data layer: it never notifies
// anyone, the owning game does that after each action.
package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// ErrIllegalPlacement is returned when a piece cannot be placed at a coordinate.
var ErrIllegalPlacement = errors.New("illegal placement")

// Location identifies a placement slot.
type Location struct {
	Kind  hexgrid.Kind
	Coord int
}

// String renders the location in canonical form.
func (l Location) String() string {
	return hexgrid.Location(l.Kind, l.Coord)
}

// Placement is a piece together with where it sits.
type Placement struct {
	Location Location
	Piece    pieces.Piece
}

// Board is the mutable game board.
type Board struct {
	Tiles []Tile
	Ports []Port

	pieces      map[Location]pieces.Piece
	robberTile  int
	initialTile int
	locked      bool
}

// KindFor returns the coordinate kind a piece type is placed on.
func KindFor(t pieces.Type) hexgrid.Kind {
	switch t {
	case pieces.Road:
		return hexgrid.Edge
	case pieces.Settlement, pieces.City:
		return hexgrid.Node
	default:
		return hexgrid.Tile
	}
}

// Locked reports whether a game is in progress on this board.
func (b *Board) Locked() bool {
	return b.locked
}

// Lock marks the board as in use by a running game.
func (b *Board) Lock() {
	b.locked = true
}

// Unlock returns the board to setup mode.
func (b *Board) Unlock() {
	b.locked = false
}

// RobberTile returns the tile id the robber starts on.
func (b *Board) RobberTile() int {
	return b.robberTile
}

// Tile returns the tile with the given id.
func (b *Board) Tile(id int) (Tile, bool) {
	for _, t := range b.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

// PlacePiece records piece at coord.
//
// Player pieces may only be placed while the board is locked; the robber may
// only be placed during setup, and its coord is a tile coordinate. A city
// replaces a settlement of the same owner.
func (b *Board) PlacePiece(piece pieces.Piece, coord int) error {
	kind := KindFor(piece.Type)
	if !hexgrid.IsLegal(kind, coord) {
		return fmt.Errorf("%w: 0x%02X is not a legal %s for a %s", ErrIllegalPlacement, coord, kind, piece.Type)
	}

	if piece.Type == pieces.Robber {
		if b.locked {
			return fmt.Errorf("%w: robber can only be set up on an unlocked board", ErrIllegalPlacement)
		}
		id, _ := hexgrid.TileIDFromCoord(coord)
		b.robberTile = id
		b.initialTile = id
		return nil
	}

	if !b.locked {
		return fmt.Errorf("%w: %s placed on an unlocked board", ErrIllegalPlacement, piece.Type)
	}
	if !piece.HasOwner {
		return fmt.Errorf("%w: %s has no owner", ErrIllegalPlacement, piece.Type)
	}

	loc := Location{Kind: kind, Coord: coord}
	existing, occupied := b.pieces[loc]

	if piece.Type == pieces.City {
		if !occupied || existing.Type != pieces.Settlement || existing.Owner != piece.Owner {
			return fmt.Errorf("%w: city at %s needs a settlement of %s", ErrIllegalPlacement, loc, piece.Owner)
		}
		b.pieces[loc] = piece
		return nil
	}

	if occupied {
		return fmt.Errorf("%w: %s is occupied by %s", ErrIllegalPlacement, loc, existing)
	}
	b.pieces[loc] = piece
	return nil
}

// GetPieces returns the zero or one piece at coord whose type is in types.
// All types must be placed on the same coordinate kind.
func (b *Board) GetPieces(types []pieces.Type, coord int) []pieces.Piece {
	if len(types) == 0 {
		return nil
	}
	kind := KindFor(types[0])
	for _, t := range types[1:] {
		if KindFor(t) != kind {
			panic(fmt.Sprintf("board: GetPieces mixes %s and %s coordinates", kind, KindFor(t)))
		}
	}

	// One piece per location is guaranteed by the map key.
	if p, ok := b.pieces[Location{Kind: kind, Coord: coord}]; ok && slices.Contains(types, p.Type) {
		return []pieces.Piece{p}
	}
	return nil
}

// PieceAt returns the piece at coord of one of types, if any.
func (b *Board) PieceAt(types []pieces.Type, coord int) (pieces.Piece, bool) {
	found := b.GetPieces(types, coord)
	if len(found) == 0 {
		return pieces.Piece{}, false
	}
	return found[0], true
}

// Placements returns every placed piece ordered by kind then coordinate.
func (b *Board) Placements() []Placement {
	out := make([]Placement, 0, len(b.pieces))
	for loc, p := range b.pieces {
		out = append(out, Placement{Location: loc, Piece: p})
	}
	slices.SortFunc(out, func(a, c Placement) int {
		if a.Location.Kind != c.Location.Kind {
			return int(a.Location.Kind) - int(c.Location.Kind)
		}
		return a.Location.Coord - c.Location.Coord
	})
	return out
}

// PlayerToPieces groups placements by owner.
func (b *Board) PlayerToPieces() map[pieces.Player][]Placement {
	out := make(map[pieces.Player][]Placement)
	for _, pl := range b.Placements() {
		out[pl.Piece.Owner] = append(out[pl.Piece.Owner], pl)
	}
	return out
}

// Reset removes all player pieces, puts the robber back where it was set up
// and unlocks the board.
func (b *Board) Reset() {
	b.pieces = make(map[Location]pieces.Piece)
	b.robberTile = b.initialTile
	b.locked = false
}

// Restore overwrites b with a deep copy of from. Pointers to b stay valid.
func (b *Board) Restore(from *Board) {
	*b = *from.Clone()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		Tiles:       slices.Clone(b.Tiles),
		Ports:       slices.Clone(b.Ports),
		pieces:      make(map[Location]pieces.Piece, len(b.pieces)),
		robberTile:  b.robberTile,
		initialTile: b.initialTile,
		locked:      b.locked,
	}
	for loc, p := range b.pieces {
		clone.pieces[loc] = p
	}
	return clone
}
