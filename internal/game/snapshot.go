package game

import (
	"maps"
	"slices"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// snapshot is a whole-game copy for undo. Field policy:
//
//	board, players, vpCards       deep copy on snapshot and on restore
//	counters, rolls, robber tile  copied by value
//	state, devCard                copied by value (states hold no pointers)
//	report                        shared, never mutated once built
//	observers, history            shared, not part of the snapshot
//	sink, logger, clock, opts     shared, not part of the snapshot
type snapshot struct {
	board      *board.Board
	players    []pieces.Player
	curPlayer  pieces.Player
	turn       int
	lastRoll   int
	lastRoller pieces.Player
	robberTile int
	state      State
	devCard    DevCardState
	vpCards    map[pieces.Player]int
	report     *Report
}

// snapshotter adapts Game to undo.Snapshotter without exporting the methods.
type snapshotter struct {
	g *Game
}

func (s snapshotter) Snapshot() snapshot {
	g := s.g
	return snapshot{
		board:      g.board.Clone(),
		players:    slices.Clone(g.players),
		curPlayer:  g.curPlayer,
		turn:       g.turn,
		lastRoll:   g.lastRoll,
		lastRoller: g.lastRoller,
		robberTile: g.robberTile,
		state:      g.state,
		devCard:    g.devCard,
		vpCards:    maps.Clone(g.vpCards),
		report:     g.report,
	}
}

func (s snapshotter) Restore(snap snapshot) {
	g := s.g
	g.board.Restore(snap.board)
	g.players = slices.Clone(snap.players)
	g.curPlayer = snap.curPlayer
	g.turn = snap.turn
	g.lastRoll = snap.lastRoll
	g.lastRoller = snap.lastRoller
	g.robberTile = snap.robberTile
	g.devCard = snap.devCard
	g.vpCards = maps.Clone(snap.vpCards)
	if g.vpCards == nil {
		g.vpCards = make(map[pieces.Player]int)
	}
	g.report = snap.report
	g.setState(snap.state)
}
