// Package game is the rules engine: a state machine over a shared board,
// with every public action undoable as a unit.
//
// Game is not safe for concurrent use. Actions run synchronously and
// observers are notified on the calling goroutine once each action, undo
// or redo has completed.
package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/catanlog"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
	"github.com/Abdur667/CS182-Final/internal/undo"
)

// DefaultVictoryPoints ends the game when a player reaches it.
const DefaultVictoryPoints = 10

// Options configures a Game. The zero value plays a full game with pregame.
type Options struct {
	// SkipPregame starts the game at BeginTurn without the opening draft.
	SkipPregame bool
	// PregameOnly ends the game as soon as the opening draft completes.
	PregameOnly bool
	// VictoryPoints needed to win. Zero means DefaultVictoryPoints.
	VictoryPoints int
	// MaxTurns ends the game after that many turns past the opening draft.
	// Zero means no limit. Report.Turns still counts the draft turns.
	MaxTurns int

	// Log receives one line per committed action. Nil discards.
	Log catanlog.Sink
	// Logger receives diagnostics. Nil discards.
	Logger *log.Logger
	// Clock stamps the end-of-game report. Nil uses the real clock.
	Clock quartz.Clock

	// OnInitialPlacement is called for each player's second pregame
	// settlement, where the initial resource grant happens.
	OnInitialPlacement func(p pieces.Player, node int)
}

// Game is the aggregate root of one session. The same Game can be started
// again after it ends or is reset.
type Game struct {
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

	sink      catanlog.Sink
	logger    *log.Logger
	clock     quartz.Clock
	opts      Options
	observers *observerList
	history   *undo.Manager[snapshot]
}

// New creates an idle game on b. A nil board gets the preset layout.
func New(b *board.Board, opts Options) *Game {
	if b == nil {
		b = board.New(board.DefaultOptions(), nil)
	}
	if opts.VictoryPoints <= 0 {
		opts.VictoryPoints = DefaultVictoryPoints
	}

	g := &Game{
		board:      b,
		curPlayer:  pieces.Nobody,
		robberTile: b.RobberTile(),
		vpCards:    make(map[pieces.Player]int),
		sink:       opts.Log,
		logger:     opts.Logger,
		clock:      opts.Clock,
		opts:       opts,
		observers:  &observerList{},
	}
	if g.sink == nil {
		g.sink = catanlog.Noop{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	g.history = undo.NewManager[snapshot](snapshotter{g})
	g.setState(NotInGame{})
	g.devCard = DevCardNotPlayed{}
	return g
}

// DebugPlayers returns the fixed four-player table used for testing.
func DebugPlayers() []pieces.Player {
	return []pieces.Player{
		pieces.MustPlayer(1, "abdur", "green"),
		pieces.MustPlayer(2, "Qlearn", "blue"),
		pieces.MustPlayer(3, "vitor", "orange"),
		pieces.MustPlayer(4, "brian", "red"),
	}
}

// Board returns the game board. It stays the same object across undo.
func (g *Game) Board() *board.Board { return g.board }

// Players returns the seated players in seat order.
func (g *Game) Players() []pieces.Player { return slices.Clone(g.players) }

// CurPlayer returns the player to act, or pieces.Nobody when idle.
func (g *Game) CurPlayer() pieces.Player { return g.curPlayer }

// Turn returns the number of turns ended so far, draft turns included.
func (g *Game) Turn() int { return g.turn }

// LastRoll returns the most recent roll and who rolled it. The roll is 0
// before anyone has rolled.
func (g *Game) LastRoll() (int, pieces.Player) { return g.lastRoll, g.lastRoller }

// RobberTile returns the tile id the robber is on.
func (g *Game) RobberTile() int { return g.robberTile }

// State returns the current state.
func (g *Game) State() State { return g.state }

// DevCardState returns whether a dev card was played this turn.
func (g *Game) DevCardState() DevCardState { return g.devCard }

// IsInGame reports whether a game is running.
func (g *Game) IsInGame() bool { return InGame(g.state) }

// IsInPregame reports whether the opening draft is running.
func (g *Game) IsInPregame() bool { return InPregame(g.state) }

// Report returns the report of the last finished game.
func (g *Game) Report() (*Report, bool) { return g.report, g.report != nil }

// CanUndo reports whether Undo would succeed.
func (g *Game) CanUndo() bool { return g.history.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (g *Game) CanRedo() bool { return g.history.CanRedo() }

// Undo reverts the most recent action.
func (g *Game) Undo() error {
	if err := g.history.Undo(); err != nil {
		return err
	}
	g.logger.Debug("undo", "state", g.state, "turn", g.turn)
	g.notify()
	return nil
}

// Redo reapplies the most recently undone action.
func (g *Game) Redo() error {
	if err := g.history.Redo(); err != nil {
		return err
	}
	g.logger.Debug("redo", "state", g.state, "turn", g.turn)
	g.notify()
	return nil
}

// do runs action as one undoable command and notifies observers once the
// outermost command completes.
func (g *Game) do(action func() error) error {
	if err := g.history.Do(action); err != nil {
		return err
	}
	if !g.history.Running() {
		g.notify()
	}
	return nil
}

func (g *Game) setState(s State) {
	if g.state != nil && g.state != s {
		g.logger.Debug("state", "from", g.state, "to", s)
	}
	g.state = s
	if InGame(s) {
		g.board.Lock()
	} else {
		g.board.Unlock()
	}
}

// Start seats players and begins the opening draft, or the first turn when
// pregame is skipped.
func (g *Game) Start(players []pieces.Player) error {
	return g.do(func() error {
		if _, ok := g.state.(NotInGame); !ok {
			return illegal(g.state, "start game")
		}
		if err := validatePlayers(players); err != nil {
			return err
		}

		g.clear()
		g.board.Reset()
		g.players = slices.Clone(players)
		g.curPlayer = g.players[0]
		g.robberTile = g.board.RobberTile()
		g.sink.LogGameStart(g.players, g.board.Tiles, g.board.Ports)

		if g.opts.SkipPregame {
			g.setState(BeginTurn{})
		} else {
			g.setState(PreGamePlacingPiece{Kind: pieces.Settlement})
		}
		g.logger.Info("game started", "players", len(g.players), "pregame", !g.opts.SkipPregame)
		return nil
	})
}

func validatePlayers(players []pieces.Player) error {
	if len(players) == 0 || len(players) > pieces.MaxSeats {
		return fmt.Errorf("%w: need 1-%d players, got %d", pieces.ErrInvalidPlayer, pieces.MaxSeats, len(players))
	}
	seen := make(map[int]bool, len(players))
	for _, p := range players {
		if p.Seat < 1 || p.Seat > pieces.MaxSeats || p.IsNobody() {
			return fmt.Errorf("%w: %s", pieces.ErrInvalidPlayer, p)
		}
		if seen[p.Seat] {
			return fmt.Errorf("%w: seat %d taken twice", pieces.ErrInvalidPlayer, p.Seat)
		}
		seen[p.Seat] = true
	}
	return nil
}

// Reset returns the game to idle, clearing players, counters, the board
// and undo history. Observers stay registered.
func (g *Game) Reset() {
	g.clear()
	g.board.Reset()
	g.history.Clear()
	g.setState(NotInGame{})
	g.logger.Debug("reset")
	g.notify()
}

// clear zeroes the per-game fields.
func (g *Game) clear() {
	g.players = nil
	g.curPlayer = pieces.Nobody
	g.turn = 0
	g.lastRoll = 0
	g.lastRoller = pieces.Nobody
	g.robberTile = g.board.RobberTile()
	g.devCard = DevCardNotPlayed{}
	g.vpCards = make(map[pieces.Player]int)
	g.report = nil
}

// End finishes a running game and builds its report. It is legal only
// when canEndGame holds for the current state.
func (g *Game) End() error {
	return g.do(func() error {
		if !InGame(g.state) || !g.canEndGame(g.state) {
			return illegal(g.state, "end game")
		}
		g.finish()
		return nil
	})
}

// finish declares the winner, builds the report and returns to idle.
func (g *Game) finish() {
	winner := g.leader()
	g.sink.LogWins(winner)
	g.report = g.evaluateFinal(winner)
	g.setState(NotInGame{})
	g.logger.Info("game over", "winner", winner, "points", g.report.Points[winner], "turns", g.turn)
}

// leader returns the player with the most victory points, earliest seat
// first on ties.
func (g *Game) leader() pieces.Player {
	if len(g.players) == 0 {
		return pieces.Nobody
	}
	best := g.players[0]
	for _, p := range g.players[1:] {
		if g.VictoryPoints(p) > g.VictoryPoints(best) {
			best = p
		}
	}
	return best
}

// VictoryPoints counts settlements, cities and played victory point cards.
func (g *Game) VictoryPoints(p pieces.Player) int {
	points := g.vpCards[p]
	for _, pl := range g.board.PlayerToPieces()[p] {
		switch pl.Piece.Type {
		case pieces.Settlement:
			points++
		case pieces.City:
			points += 2
		}
	}
	return points
}

// PlayerHasPortType reports whether p has a settlement or city on a port
// of type pt.
func (g *Game) PlayerHasPortType(p pieces.Player, pt board.PortType) bool {
	for _, port := range g.board.Ports {
		if port.Type == pt && g.playerHasPort(p, port) {
			return true
		}
	}
	return false
}

// CurPlayerHasPortType is PlayerHasPortType for the current player.
func (g *Game) CurPlayerHasPortType(pt board.PortType) bool {
	return g.PlayerHasPortType(g.curPlayer, pt)
}

func (g *Game) playerHasPort(p pieces.Player, port board.Port) bool {
	edge, ok := port.Edge()
	if !ok {
		return false
	}
	for _, node := range hexgrid.NodesTouchingEdge(edge) {
		piece, ok := g.board.PieceAt([]pieces.Type{pieces.Settlement, pieces.City}, node)
		if ok && piece.Owner == p {
			return true
		}
	}
	return false
}

// StealablePlayers returns, in seat order, the players other than the
// current one who own a settlement or city on the robber's tile.
func (g *Game) StealablePlayers() []pieces.Player {
	seen := make(map[pieces.Player]bool)
	var out []pieces.Player
	for _, node := range hexgrid.NodesTouchingTile(g.robberTile) {
		piece, ok := g.board.PieceAt([]pieces.Type{pieces.Settlement, pieces.City}, node)
		if !ok || piece.Owner == g.curPlayer || seen[piece.Owner] {
			continue
		}
		seen[piece.Owner] = true
		out = append(out, piece.Owner)
	}
	slices.SortFunc(out, func(a, b pieces.Player) int { return a.Seat - b.Seat })
	return out
}
