package game

import (
	"fmt"

	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// State is the current phase of a game. The set of variants is closed;
// Game dispatches on the concrete type. States are plain values and carry
// no reference to the game they belong to.
type State interface {
	fmt.Stringer
	isState()
}

// NotInGame is the idle state before Start and after the game ends.
type NotInGame struct{}

// PreGamePlacingPiece is one step of the opening snake draft.
type PreGamePlacingPiece struct {
	Kind pieces.Type
}

// BeginTurn waits for the current player to roll.
type BeginTurn struct{}

// DuringTurnAfterRoll allows building, trading, dev cards and ending the turn.
type DuringTurnAfterRoll struct{}

// MoveRobber follows a roll of 7.
type MoveRobber struct {
	Moved bool
}

// MoveRobberUsingKnight follows a knight play. Rolled records whether the
// dice were rolled earlier in the turn.
type MoveRobberUsingKnight struct {
	Moved  bool
	Rolled bool
}

// PlacingPiece waits for a bought piece, or for the free roads of a road
// builder card. Built holds the road builder edges placed so far.
type PlacingPiece struct {
	Kind        pieces.Type
	RoadBuilder bool
	Built       [2]int
	NumBuilt    int
}

func (NotInGame) isState() {}
func (PreGamePlacingPiece) isState() {}
func (BeginTurn) isState() {}
func (DuringTurnAfterRoll) isState() {}
func (MoveRobber) isState() {}
func (MoveRobberUsingKnight) isState() {}
func (PlacingPiece) isState() {}

func (NotInGame) String() string { return "not in game" }

func (s PreGamePlacingPiece) String() string {
	return fmt.Sprintf("pregame placing %s", s.Kind)
}

func (BeginTurn) String() string { return "begin turn" }

func (DuringTurnAfterRoll) String() string { return "during turn after roll" }

func (s MoveRobber) String() string {
	if s.Moved {
		return "steal"
	}
	return "move robber"
}

func (s MoveRobberUsingKnight) String() string {
	if s.Moved {
		return "steal using knight"
	}
	return "move robber using knight"
}

func (s PlacingPiece) String() string {
	if s.RoadBuilder {
		return fmt.Sprintf("placing road builder road %d of 2", s.NumBuilt+1)
	}
	return fmt.Sprintf("placing %s", s.Kind)
}

// InGame reports whether s is any state other than NotInGame.
func InGame(s State) bool {
	switch s.(type) {
	case NotInGame, nil:
		return false
	default:
		return true
	}
}

// InPregame reports whether s is part of the opening draft.
func InPregame(s State) bool {
	_, ok := s.(PreGamePlacingPiece)
	return ok
}

// DevCardState tracks whether a dev card was played this turn.
type DevCardState interface {
	fmt.Stringer
	isDevCardState()
}

// DevCardNotPlayed allows one dev card play.
type DevCardNotPlayed struct{}

// DevCardPlayed rejects further plays until the turn ends.
type DevCardPlayed struct{}

func (DevCardNotPlayed) isDevCardState() {}
func (DevCardPlayed) isDevCardState() {}

func (DevCardNotPlayed) String() string { return "dev card not played" }
func (DevCardPlayed) String() string { return "dev card played" }
