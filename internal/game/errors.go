package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalAction is returned when an action is not supported by the
	// current state. The concrete error is always an *IllegalActionError.
	ErrIllegalAction = errors.New("illegal action")
	// ErrDevCardAlreadyPlayed is returned on a second dev card play in one turn.
	ErrDevCardAlreadyPlayed = errors.New("dev card already played this turn")
	// ErrInvalidVictim is returned when stealing from a player the robber does not touch.
	ErrInvalidVictim = errors.New("invalid victim")
	// ErrIllegalTrade is returned for malformed trades and port trades
	// through a port the player does not own.
	ErrIllegalTrade = errors.New("illegal trade")
	// ErrInvalidRoll is returned for dice totals outside 2-12.
	ErrInvalidRoll = errors.New("invalid roll")
)

// IllegalActionError names the state that rejected an action.
type IllegalActionError struct {
	State  State
	Action string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action: cannot %s in state %s", e.Action, e.State)
}

func (e *IllegalActionError) Unwrap() error {
	return ErrIllegalAction
}

func illegal(s State, action string) error {
	return &IllegalActionError{State: s, Action: action}
}
