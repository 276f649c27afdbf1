// Package pieces defines the immutable value types for players and the
// objects they place on the board.
package pieces

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlayer is returned when a player is constructed with a seat outside 1-4.
var ErrInvalidPlayer = errors.New("invalid player")

// MaxSeats is the number of seats at the table.
const MaxSeats = 4

// Player is a seated participant. Seats are numbered 1-4 clockwise from the
// top-left. Player is comparable, so it can be used as a map key.
type Player struct {
	Seat  int
	Name  string
	Color string
}

// Nobody stands in for "no player", e.g. before a game starts or when a
// robber move has no one to steal from.
var Nobody = Player{Seat: 1, Name: "nobody", Color: "nobody"}

// NewPlayer creates a player. Name and color are lowercased with spaces removed.
func NewPlayer(seat int, name, color string) (Player, error) {
	if seat < 1 || seat > MaxSeats {
		return Player{}, fmt.Errorf("%w: seat %d must be on [1,%d]", ErrInvalidPlayer, seat, MaxSeats)
	}
	return Player{
		Seat:  seat,
		Name:  normalize(name),
		Color: normalize(color),
	}, nil
}

// MustPlayer is like NewPlayer but panics on error. Intended for fixed player lists.
func MustPlayer(seat int, name, color string) Player {
	p, err := NewPlayer(seat, name, color)
	if err != nil {
		panic(err)
	}
	return p
}

// IsNobody reports whether p is the Nobody sentinel.
func (p Player) IsNobody() bool {
	return p == Nobody
}

// String returns "color (name)".
func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Color, p.Name)
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// Type is the kind of a placed object.
type Type int

const (
	Road Type = iota
	Settlement
	City
	Robber
)

// String returns the piece type name.
func (t Type) String() string {
	switch t {
	case Road:
		return "road"
	case Settlement:
		return "settlement"
	case City:
		return "city"
	case Robber:
		return "robber"
	default:
		return "unknown"
	}
}

// Piece is an object on the board. The robber has no owner.
type Piece struct {
	Type     Type
	Owner    Player
	HasOwner bool
}

// New returns a piece of type t owned by owner.
func New(t Type, owner Player) Piece {
	return Piece{Type: t, Owner: owner, HasOwner: true}
}

// NewRobber returns the ownerless robber piece.
func NewRobber() Piece {
	return Piece{Type: Robber}
}

// String renders the piece for logs.
func (p Piece) String() string {
	if !p.HasOwner {
		return p.Type.String()
	}
	return fmt.Sprintf("%s %s", p.Owner, p.Type)
}
