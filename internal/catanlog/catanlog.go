// Package catanlog writes a human-readable, replayable record of a game.
//
// Each committed action produces exactly one line. The sink only ever receives
// fully resolved values (players, resources, canonical locations), never game
// internals.
package catanlog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Version is written into every log header.
const Version = "1.0"

// Sink receives one call per committed action.
type Sink interface {
	LogGameStart(players []pieces.Player, tiles []board.Tile, ports []board.Port)
	LogRoll(p pieces.Player, roll int)
	LogRobber(p pieces.Player, tile string, victim pieces.Player)
	LogBuysRoad(p pieces.Player, location string)
	LogBuysSettlement(p pieces.Player, location string)
	LogBuysCity(p pieces.Player, location string)
	LogBuysDevCard(p pieces.Player)
	LogTradesWithPlayer(giver pieces.Player, giving []board.Resource, getter pieces.Player, getting []board.Resource)
	LogTradesWithPort(giver pieces.Player, giving []board.Resource, port board.PortType, getting []board.Resource)
	LogPlaysKnight(p pieces.Player)
	LogPlaysMonopoly(p pieces.Player, r board.Resource)
	LogPlaysYearOfPlenty(p pieces.Player, r1, r2 board.Resource)
	LogPlaysRoadBuilder(p pieces.Player, location1, location2 string)
	LogPlaysVictoryPoint(p pieces.Player)
	LogEndsTurn(p pieces.Player)
	LogWins(p pieces.Player)
}

// Writer writes log lines to an io.Writer. The first write error is kept
// and all later writes are skipped.
type Writer struct {
	w         io.Writer
	clock     quartz.Clock
	turnStart time.Time
	err       error
}

// NewWriter returns a Writer. A nil clock uses the real clock.
func NewWriter(w io.Writer, clock quartz.Clock) *Writer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Writer{w: w, clock: clock, turnStart: clock.Now()}
}

// Err returns the first write error, if any.
func (l *Writer) Err() error {
	return l.err
}

func (l *Writer) printf(format string, args ...any) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, format+"\n", args...)
}

// LogGameStart writes the header describing players and board.
func (l *Writer) LogGameStart(players []pieces.Player, tiles []board.Tile, ports []board.Port) {
	l.turnStart = l.clock.Now()
	l.printf("name: catan")
	l.printf("timestamp: %s", l.turnStart.Format("2006-01-02 15:04:05"))
	l.printf("version: %s", Version)

	terrain := make([]string, len(tiles))
	numbers := make([]string, len(tiles))
	for i, t := range tiles {
		terrain[i] = t.Terrain.String()
		if t.Number == 0 {
			numbers[i] = "-"
		} else {
			numbers[i] = fmt.Sprintf("%d", t.Number)
		}
	}
	portNames := make([]string, len(ports))
	for i, p := range ports {
		portNames[i] = fmt.Sprintf("%s(%d %s)", p.Type, p.TileID, p.Direction)
	}
	l.printf("board: terrain=%s numbers=%s", strings.Join(terrain, ","), strings.Join(numbers, ","))
	l.printf("ports: %s", strings.Join(portNames, ","))

	l.printf("players: %d", len(players))
	for _, p := range players {
		l.printf("name: %s, color: %s, seat: %d", p.Name, p.Color, p.Seat)
	}
	l.printf("...CATAN!")
}

func (l *Writer) LogRoll(p pieces.Player, roll int) {
	l.printf("%s rolls %d", p, roll)
}

func (l *Writer) LogRobber(p pieces.Player, tile string, victim pieces.Player) {
	if victim.IsNobody() {
		l.printf("%s moves robber to %s, steals from nobody", p, tile)
		return
	}
	l.printf("%s moves robber to %s, steals from %s", p, tile, victim)
}

func (l *Writer) LogBuysRoad(p pieces.Player, location string) {
	l.printf("%s buys road, builds at %s", p, location)
}

func (l *Writer) LogBuysSettlement(p pieces.Player, location string) {
	l.printf("%s buys settlement, builds at %s", p, location)
}

func (l *Writer) LogBuysCity(p pieces.Player, location string) {
	l.printf("%s buys city, builds at %s", p, location)
}

func (l *Writer) LogBuysDevCard(p pieces.Player) {
	l.printf("%s buys dev card", p)
}

func (l *Writer) LogTradesWithPlayer(giver pieces.Player, giving []board.Resource, getter pieces.Player, getting []board.Resource) {
	l.printf("%s trades %s to player %s for %s", giver, resources(giving), getter, resources(getting))
}

func (l *Writer) LogTradesWithPort(giver pieces.Player, giving []board.Resource, port board.PortType, getting []board.Resource) {
	l.printf("%s trades %s to port %s for %s", giver, resources(giving), port, resources(getting))
}

func (l *Writer) LogPlaysKnight(p pieces.Player) {
	l.printf("%s plays knight", p)
}

func (l *Writer) LogPlaysMonopoly(p pieces.Player, r board.Resource) {
	l.printf("%s plays monopoly on %s", p, r)
}

func (l *Writer) LogPlaysYearOfPlenty(p pieces.Player, r1, r2 board.Resource) {
	l.printf("%s plays year of plenty, takes %s and %s", p, r1, r2)
}

func (l *Writer) LogPlaysRoadBuilder(p pieces.Player, location1, location2 string) {
	l.printf("%s plays road builder, builds at %s and %s", p, location1, location2)
}

func (l *Writer) LogPlaysVictoryPoint(p pieces.Player) {
	l.printf("%s plays victory point", p)
}

// LogEndsTurn records how long the turn took and starts timing the next one.
func (l *Writer) LogEndsTurn(p pieces.Player) {
	now := l.clock.Now()
	l.printf("%s ends turn after %ds", p, int(now.Sub(l.turnStart).Seconds()))
	l.turnStart = now
}

func (l *Writer) LogWins(p pieces.Player) {
	l.printf("%s wins", p)
}

// resources renders e.g. "[2 wood, 1 ore]".
func resources(rs []board.Resource) string {
	counts := make(map[board.Resource]int)
	var order []board.Resource
	for _, r := range rs {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}
	parts := make([]string, len(order))
	for i, r := range order {
		parts[i] = fmt.Sprintf("%d %s", counts[r], r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Noop discards everything.
type Noop struct{}

func (Noop) LogGameStart([]pieces.Player, []board.Tile, []board.Port) {}
func (Noop) LogRoll(pieces.Player, int) {}
func (Noop) LogRobber(pieces.Player, string, pieces.Player) {}
func (Noop) LogBuysRoad(pieces.Player, string) {}
func (Noop) LogBuysSettlement(pieces.Player, string) {}
func (Noop) LogBuysCity(pieces.Player, string) {}
func (Noop) LogBuysDevCard(pieces.Player) {}
func (Noop) LogTradesWithPlayer(pieces.Player, []board.Resource, pieces.Player, []board.Resource) {}
func (Noop) LogTradesWithPort(pieces.Player, []board.Resource, board.PortType, []board.Resource) {}
func (Noop) LogPlaysKnight(pieces.Player) {}
func (Noop) LogPlaysMonopoly(pieces.Player, board.Resource) {}
func (Noop) LogPlaysYearOfPlenty(pieces.Player, board.Resource, board.Resource) {}
func (Noop) LogPlaysRoadBuilder(pieces.Player, string, string) {}
func (Noop) LogPlaysVictoryPoint(pieces.Player) {}
func (Noop) LogEndsTurn(pieces.Player) {}
func (Noop) LogWins(pieces.Player) {}

var (
	_ Sink = (*Writer)(nil)
	_ Sink = Noop{}
)
