// Package config provides YAML-based configuration for games, boards,
// seated agents, logging and storage.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Config is the full configuration of the catan binary.
type Config struct {
	Game    GameConfig     `yaml:"game"`
	Board   board.Options  `yaml:"board"`
	Players []PlayerConfig `yaml:"players"`
	Log     LogConfig      `yaml:"log"`
	Storage StorageConfig  `yaml:"storage"`
}

// GameConfig holds the rule options.
type GameConfig struct {
	Pregame       bool  `yaml:"pregame"`
	PregameOnly   bool  `yaml:"pregame_only"`
	VictoryPoints int   `yaml:"victory_points"`
	MaxTurns      int   `yaml:"max_turns"`
	Seed          int64 `yaml:"seed"` // 0 picks a seed from the clock
}

// PlayerConfig seats one player and the agent that plays it.
type PlayerConfig struct {
	Seat  int    `yaml:"seat"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Agent string `yaml:"agent"`
}

// LogConfig controls the game log and diagnostics.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"` // write the replayable game log
	Stdout  bool   `yaml:"stdout"`  // game log to stdout instead of Dir
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"` // diagnostics: debug, info, warn, error
}

// StorageConfig locates the report database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// Validate checks the configuration for values the game would reject.
func (c Config) Validate() error {
	var errs []error

	if err := c.Board.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Game.VictoryPoints < 0 {
		errs = append(errs, fmt.Errorf("config: victory_points must not be negative"))
	}
	if c.Game.MaxTurns < 0 {
		errs = append(errs, fmt.Errorf("config: max_turns must not be negative"))
	}
	if c.Game.PregameOnly && !c.Game.Pregame {
		errs = append(errs, fmt.Errorf("config: pregame_only needs pregame"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: log level: %w", err))
	}

	if len(c.Players) == 0 || len(c.Players) > pieces.MaxSeats {
		errs = append(errs, fmt.Errorf("config: need 1-%d players, got %d", pieces.MaxSeats, len(c.Players)))
	}
	seats := make(map[int]bool)
	for _, p := range c.Players {
		if _, err := pieces.NewPlayer(p.Seat, p.Name, p.Color); err != nil {
			errs = append(errs, fmt.Errorf("config: player %q: %w", p.Name, err))
		}
		if seats[p.Seat] {
			errs = append(errs, fmt.Errorf("config: seat %d taken twice", p.Seat))
		}
		seats[p.Seat] = true
		if p.Agent == "" {
			errs = append(errs, fmt.Errorf("config: player %q has no agent", p.Name))
		}
	}
	return errors.Join(errs...)
}

// GameOptions converts the rule options. Sinks, loggers and hooks are left
// for the caller.
func (c Config) GameOptions() game.Options {
	return game.Options{
		SkipPregame:   !c.Game.Pregame,
		PregameOnly:   c.Game.PregameOnly,
		VictoryPoints: c.Game.VictoryPoints,
		MaxTurns:      c.Game.MaxTurns,
	}
}

// Seating returns the configured players in seat order with their agent ids.
func (c Config) Seating() ([]pieces.Player, []string, error) {
	sorted := slices.Clone(c.Players)
	slices.SortStableFunc(sorted, func(a, b PlayerConfig) int { return a.Seat - b.Seat })

	players := make([]pieces.Player, 0, len(sorted))
	agents := make([]string, 0, len(sorted))
	for _, pc := range sorted {
		p, err := pieces.NewPlayer(pc.Seat, pc.Name, pc.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("config: player %q: %w", pc.Name, err)
		}
		players = append(players, p)
		agents = append(agents, pc.Agent)
	}
	return players, agents, nil
}

// LogLevel returns the diagnostics level, info when unset or invalid.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
