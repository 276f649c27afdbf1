package game

import (
	"fmt"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Roll records the dice total for the current player. A 7 moves on to the
// robber.
func (g *Game) Roll(total int) error {
	return g.do(func() error {
		if _, ok := g.state.(BeginTurn); !ok {
			return illegal(g.state, "roll")
		}
		if total < 2 || total > 12 {
			return fmt.Errorf("%w: %d", ErrInvalidRoll, total)
		}

		g.sink.LogRoll(g.curPlayer, total)
		g.lastRoll = total
		g.lastRoller = g.curPlayer
		if total == 7 {
			g.setState(MoveRobber{})
		} else {
			g.setState(DuringTurnAfterRoll{})
		}
		return nil
	})
}

// MoveRobber moves the robber to tileID. Steal must follow.
func (g *Game) MoveRobber(tileID int) error {
	return g.do(func() error {
		switch s := g.state.(type) {
		case MoveRobber:
			if s.Moved {
				return illegal(g.state, "move robber")
			}
			if err := g.placeRobber(tileID); err != nil {
				return err
			}
			g.setState(MoveRobber{Moved: true})
		case MoveRobberUsingKnight:
			if s.Moved {
				return illegal(g.state, "move robber")
			}
			if err := g.placeRobber(tileID); err != nil {
				return err
			}
			g.setState(MoveRobberUsingKnight{Moved: true, Rolled: s.Rolled})
		default:
			return illegal(g.state, "move robber")
		}
		return nil
	})
}

func (g *Game) placeRobber(tileID int) error {
	if !hexgrid.IsTileID(tileID) {
		return fmt.Errorf("%w: no tile %d", board.ErrIllegalPlacement, tileID)
	}
	if tileID == g.robberTile {
		return illegal(g.state, fmt.Sprintf("leave robber on tile %d", tileID))
	}
	g.robberTile = tileID
	return nil
}

// Steal takes from victim after the robber moved. Pass pieces.Nobody when
// StealablePlayers is empty.
func (g *Game) Steal(victim pieces.Player) error {
	return g.do(func() error {
		var next State
		switch s := g.state.(type) {
		case MoveRobber:
			if !s.Moved {
				return illegal(g.state, "steal")
			}
			next = DuringTurnAfterRoll{}
		case MoveRobberUsingKnight:
			if !s.Moved {
				return illegal(g.state, "steal")
			}
			next = BeginTurn{}
			if s.Rolled {
				next = DuringTurnAfterRoll{}
			}
		default:
			return illegal(g.state, "steal")
		}

		if err := g.checkVictim(victim); err != nil {
			return err
		}
		g.sink.LogRobber(g.curPlayer, hexgrid.TileLocation(g.robberTile), victim)
		g.setState(next)
		return nil
	})
}

func (g *Game) checkVictim(victim pieces.Player) error {
	stealable := g.StealablePlayers()
	if len(stealable) == 0 && victim.IsNobody() {
		return nil
	}
	for _, p := range stealable {
		if p == victim {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not next to tile %d", ErrInvalidVictim, victim, g.robberTile)
}

// BeginPlacing starts a purchase of kind. During the draft it only accepts
// the kind the draft expects, and accepting it changes nothing.
func (g *Game) BeginPlacing(kind pieces.Type) error {
	if s, ok := g.state.(PreGamePlacingPiece); ok && s.Kind == kind {
		return nil
	}
	return g.do(func() error {
		if kind != pieces.Road && kind != pieces.Settlement && kind != pieces.City {
			return illegal(g.state, fmt.Sprintf("place %s", kind))
		}
		switch g.state.(type) {
		case DuringTurnAfterRoll:
			g.setState(PlacingPiece{Kind: kind})
		default:
			return illegal(g.state, fmt.Sprintf("place %s", kind))
		}
		return nil
	})
}

// CancelPlacing abandons a purchase started with BeginPlacing.
func (g *Game) CancelPlacing() error {
	return g.do(func() error {
		s, ok := g.state.(PlacingPiece)
		if !ok || s.RoadBuilder {
			return illegal(g.state, "cancel placing")
		}
		g.setState(DuringTurnAfterRoll{})
		return nil
	})
}

// PlaceRoad builds a road for the current player. A pregame road ends the
// turn.
func (g *Game) PlaceRoad(edge int) error {
	return g.do(func() error {
		switch s := g.state.(type) {
		case PreGamePlacingPiece:
			if s.Kind != pieces.Road {
				return illegal(g.state, "place road")
			}
			if err := g.build(pieces.Road, edge); err != nil {
				return err
			}
			g.sink.LogBuysRoad(g.curPlayer, hexgrid.Location(hexgrid.Edge, edge))
			g.endTurn()
		case PlacingPiece:
			if s.Kind != pieces.Road {
				return illegal(g.state, "place road")
			}
			if err := g.build(pieces.Road, edge); err != nil {
				return err
			}
			if !s.RoadBuilder {
				g.sink.LogBuysRoad(g.curPlayer, hexgrid.Location(hexgrid.Edge, edge))
				g.setState(DuringTurnAfterRoll{})
				return nil
			}
			s.Built[s.NumBuilt] = edge
			s.NumBuilt++
			if s.NumBuilt < len(s.Built) {
				g.setState(s)
				return nil
			}
			g.sink.LogPlaysRoadBuilder(g.curPlayer,
				hexgrid.Location(hexgrid.Edge, s.Built[0]),
				hexgrid.Location(hexgrid.Edge, s.Built[1]))
			g.setState(DuringTurnAfterRoll{})
		default:
			return illegal(g.state, "place road")
		}
		return nil
	})
}

// PlaceSettlement builds a settlement for the current player. During the
// draft the player then places a road.
func (g *Game) PlaceSettlement(node int) error {
	return g.do(func() error {
		switch s := g.state.(type) {
		case PreGamePlacingPiece:
			if s.Kind != pieces.Settlement {
				return illegal(g.state, "place settlement")
			}
			if err := g.build(pieces.Settlement, node); err != nil {
				return err
			}
			g.sink.LogBuysSettlement(g.curPlayer, hexgrid.Location(hexgrid.Node, node))
			if g.turn >= len(g.players) && g.opts.OnInitialPlacement != nil {
				g.opts.OnInitialPlacement(g.curPlayer, node)
			}
			g.setState(PreGamePlacingPiece{Kind: pieces.Road})
		case PlacingPiece:
			if s.Kind != pieces.Settlement {
				return illegal(g.state, "place settlement")
			}
			if err := g.build(pieces.Settlement, node); err != nil {
				return err
			}
			g.sink.LogBuysSettlement(g.curPlayer, hexgrid.Location(hexgrid.Node, node))
			g.setState(DuringTurnAfterRoll{})
		default:
			return illegal(g.state, "place settlement")
		}
		return nil
	})
}

// PlaceCity upgrades one of the current player's settlements.
func (g *Game) PlaceCity(node int) error {
	return g.do(func() error {
		s, ok := g.state.(PlacingPiece)
		if !ok || s.Kind != pieces.City {
			return illegal(g.state, "place city")
		}
		if err := g.build(pieces.City, node); err != nil {
			return err
		}
		g.sink.LogBuysCity(g.curPlayer, hexgrid.Location(hexgrid.Node, node))
		g.setState(DuringTurnAfterRoll{})
		return nil
	})
}

func (g *Game) build(t pieces.Type, coord int) error {
	return g.board.PlacePiece(pieces.New(t, g.curPlayer), coord)
}

// BuyDevCard records a dev card purchase.
func (g *Game) BuyDevCard() error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "buy dev card")
		}
		g.sink.LogBuysDevCard(g.curPlayer)
		return nil
	})
}

// playDevCard marks the turn's dev card as used.
func (g *Game) playDevCard() error {
	if _, ok := g.devCard.(DevCardPlayed); ok {
		return ErrDevCardAlreadyPlayed
	}
	g.devCard = DevCardPlayed{}
	return nil
}

// PlayKnight moves the robber without rolling a 7. It may be played before
// or after the roll.
func (g *Game) PlayKnight() error {
	return g.do(func() error {
		var rolled bool
		switch g.state.(type) {
		case BeginTurn:
		case DuringTurnAfterRoll:
			rolled = true
		default:
			return illegal(g.state, "play knight")
		}
		if err := g.playDevCard(); err != nil {
			return err
		}
		g.sink.LogPlaysKnight(g.curPlayer)
		g.setState(MoveRobberUsingKnight{Rolled: rolled})
		return nil
	})
}

// PlayMonopoly claims every card of resource r.
func (g *Game) PlayMonopoly(r board.Resource) error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "play monopoly")
		}
		if err := g.playDevCard(); err != nil {
			return err
		}
		g.sink.LogPlaysMonopoly(g.curPlayer, r)
		return nil
	})
}

// PlayYearOfPlenty takes two resources from the bank.
func (g *Game) PlayYearOfPlenty(r1, r2 board.Resource) error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "play year of plenty")
		}
		if err := g.playDevCard(); err != nil {
			return err
		}
		g.sink.LogPlaysYearOfPlenty(g.curPlayer, r1, r2)
		return nil
	})
}

// PlayRoadBuilder lets the current player place two free roads. The play
// is logged once both are placed.
func (g *Game) PlayRoadBuilder() error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "play road builder")
		}
		if err := g.playDevCard(); err != nil {
			return err
		}
		g.setState(PlacingPiece{Kind: pieces.Road, RoadBuilder: true})
		return nil
	})
}

// PlayVictoryPoint reveals a victory point card.
func (g *Game) PlayVictoryPoint() error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "play victory point")
		}
		if err := g.playDevCard(); err != nil {
			return err
		}
		g.vpCards[g.curPlayer]++
		g.sink.LogPlaysVictoryPoint(g.curPlayer)
		return nil
	})
}
