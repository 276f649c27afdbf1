package game

import (
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// draftPosition maps a pregame turn to a seat index: forward once, then
// backward once.
func draftPosition(turn, n int) int {
	if turn < n {
		return turn
	}
	return 2*n - 1 - turn
}

// nextPlayer returns who acts after cur ends turn number turn. It does not
// modify anything.
func nextPlayer(s State, cur pieces.Player, turn int, players []pieces.Player) pieces.Player {
	n := len(players)
	if n == 0 {
		return pieces.Nobody
	}
	switch s.(type) {
	case PreGamePlacingPiece:
		next := turn + 1
		if next >= 2*n {
			return players[0]
		}
		return players[draftPosition(next, n)]
	default:
		for i, p := range players {
			if p == cur {
				return players[(i+1)%n]
			}
		}
		return players[0]
	}
}

// draftComplete reports whether every player has placed both pregame pairs.
func (g *Game) draftComplete() bool {
	return g.turn >= 2*len(g.players)
}

// mainTurns counts the turns played after the opening draft.
func (g *Game) mainTurns() int {
	if g.opts.SkipPregame {
		return g.turn
	}
	return max(g.turn-2*len(g.players), 0)
}

// canEndGame reports whether entering s finishes the game.
func (g *Game) canEndGame(s State) bool {
	switch s.(type) {
	case BeginTurn:
		if g.opts.PregameOnly && !g.opts.SkipPregame && g.draftComplete() {
			return true
		}
		if g.opts.MaxTurns > 0 && g.mainTurns() >= g.opts.MaxTurns {
			return true
		}
		for _, p := range g.players {
			if g.VictoryPoints(p) >= g.opts.VictoryPoints {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// EndTurn passes play to the next player.
func (g *Game) EndTurn() error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "end turn")
		}
		g.endTurn()
		return nil
	})
}

// endTurn advances the player and turn counter and installs the next state,
// or finishes the game when that state allows it.
func (g *Game) endTurn() {
	g.devCard = DevCardNotPlayed{}
	g.sink.LogEndsTurn(g.curPlayer)

	g.curPlayer = nextPlayer(g.state, g.curPlayer, g.turn, g.players)
	g.turn++

	var next State = BeginTurn{}
	if InPregame(g.state) && !g.draftComplete() {
		next = PreGamePlacingPiece{Kind: pieces.Settlement}
	}
	g.logger.Debug("turn ended", "turn", g.turn, "next", g.curPlayer)

	if g.canEndGame(next) {
		g.finish()
		return
	}
	g.setState(next)
}
