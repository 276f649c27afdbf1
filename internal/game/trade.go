package game

import (
	"fmt"
	"slices"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Trade is an exchange of resources between the current player and either
// another player or a port.
type Trade struct {
	Giver   pieces.Player
	Giving  []board.Resource
	Getter  pieces.Player
	Port    board.PortType
	AtPort  bool
	Getting []board.Resource
}

// PlayerTrade builds a trade between two players.
func PlayerTrade(giver pieces.Player, giving []board.Resource, getter pieces.Player, getting []board.Resource) Trade {
	return Trade{Giver: giver, Giving: giving, Getter: getter, Getting: getting}
}

// PortTrade builds a trade with a port.
func PortTrade(giver pieces.Player, giving []board.Resource, port board.PortType, getting []board.Resource) Trade {
	return Trade{Giver: giver, Giving: giving, Port: port, AtPort: true, Getting: getting}
}

// ratio returns how many identical cards the port takes per card given back.
func ratio(pt board.PortType) (int, board.Resource) {
	switch pt {
	case board.PortWood2:
		return 2, board.ResourceWood
	case board.PortBrick2:
		return 2, board.ResourceBrick
	case board.PortWheat2:
		return 2, board.ResourceWheat
	case board.PortSheep2:
		return 2, board.ResourceSheep
	case board.PortOre2:
		return 2, board.ResourceOre
	default:
		return 3, 0
	}
}

// Trade records t. The giver must be the current player; a port trade
// needs a settlement or city on a port of that type and the port's ratio.
func (g *Game) Trade(t Trade) error {
	return g.do(func() error {
		if _, ok := g.state.(DuringTurnAfterRoll); !ok {
			return illegal(g.state, "trade")
		}
		if err := g.validateTrade(t); err != nil {
			return err
		}
		if t.AtPort {
			g.sink.LogTradesWithPort(t.Giver, t.Giving, t.Port, t.Getting)
		} else {
			g.sink.LogTradesWithPlayer(t.Giver, t.Giving, t.Getter, t.Getting)
		}
		return nil
	})
}

func (g *Game) validateTrade(t Trade) error {
	if t.Giver != g.curPlayer {
		return fmt.Errorf("%w: %s is not the current player", ErrIllegalTrade, t.Giver)
	}
	if len(t.Giving) == 0 || len(t.Getting) == 0 {
		return fmt.Errorf("%w: both sides must offer resources", ErrIllegalTrade)
	}

	if !t.AtPort {
		if t.Getter == t.Giver || !slices.Contains(g.players, t.Getter) {
			return fmt.Errorf("%w: cannot trade with %s", ErrIllegalTrade, t.Getter)
		}
		return nil
	}

	if !g.PlayerHasPortType(t.Giver, t.Port) {
		return fmt.Errorf("%w: %s has no %s port", ErrIllegalTrade, t.Giver, t.Port)
	}
	n, want := ratio(t.Port)
	if len(t.Giving) != n*len(t.Getting) {
		return fmt.Errorf("%w: %s port takes %d cards per card", ErrIllegalTrade, t.Port, n)
	}
	for _, r := range t.Giving {
		if want != 0 && r != want {
			return fmt.Errorf("%w: %s port does not take %s", ErrIllegalTrade, t.Port, r)
		}
		if r != t.Giving[0] {
			return fmt.Errorf("%w: port trades give one resource type", ErrIllegalTrade)
		}
	}
	return nil
}
