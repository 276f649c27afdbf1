package config

import (
	_ "embed"

	"github.com/Abdur667/CS182-Final/internal/board"
)

//go:embed defaults/catan.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/catan.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			Pregame:       true,
			VictoryPoints: 10,
			MaxTurns:      400,
		},
		Board: board.DefaultOptions(),
		Players: []PlayerConfig{
			{Seat: 1, Name: "abdur", Color: "green", Agent: "spread"},
			{Seat: 2, Name: "qlearn", Color: "blue", Agent: "random"},
			{Seat: 3, Name: "vitor", Color: "orange", Agent: "random"},
			{Seat: 4, Name: "brian", Color: "red", Agent: "spread"},
		},
		Log: LogConfig{
			Enabled: true,
			Dir:     "~/.catan/logs",
			Level:   "info",
		},
		Storage: StorageConfig{
			DB: "~/.catan/catan.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
