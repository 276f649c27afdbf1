// Package sim seats configured agents at a freshly built board and
// produces a started game ready to be driven, for the CLI and the viewer.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Abdur667/CS182-Final/internal/agent"
	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/catanlog"
	"github.com/Abdur667/CS182-Final/internal/config"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

// Table is one started game with its agents.
type Table struct {
	Seed   int64
	Game   *game.Game
	Runner *agent.Runner
	// Meta describes the table for storage. LogPath is left to the caller.
	Meta storage.Meta
}

// NewTable builds the board for seed, seats the configured agents and
// starts the game. sink and logger may be nil.
func NewTable(cfg config.Config, seed int64, sink catanlog.Sink, logger *log.Logger) (*Table, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sink == nil {
		sink = catanlog.Noop{}
	}
	logger = logger.With("seed", seed)

	rng := rand.New(rand.NewSource(seed))
	b := board.New(cfg.Board, rng)

	players, agentIDs, err := cfg.Seating()
	if err != nil {
		return nil, err
	}
	agents, err := agent.Seat(players, agentIDs, rng)
	if err != nil {
		return nil, err
	}
	meta := storage.Meta{Seed: seed, Agents: make(map[pieces.Player]string, len(players))}
	for i, p := range players {
		meta.Agents[p] = agentIDs[i]
	}

	opts := cfg.GameOptions()
	opts.Log = sink
	opts.Logger = logger
	opts.OnInitialPlacement = agent.InitialGrant(b, func(p pieces.Player, rs []board.Resource) {
		logger.Debug("initial resources", "player", p, "resources", rs)
	})

	g := game.New(b, opts)
	if err := g.Start(players); err != nil {
		return nil, err
	}

	return &Table{
		Seed:   seed,
		Game:   g,
		Runner: &agent.Runner{Game: g, Agents: agents, Rng: rng, Logger: logger},
		Meta:   meta,
	}, nil
}
