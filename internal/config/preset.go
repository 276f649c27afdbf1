package config

import (
	"fmt"

	"github.com/Abdur667/CS182-Final/internal/board"
)

// Preset is a named game length.
type Preset string

const (
	PresetQuick    Preset = "quick"
	PresetStandard Preset = "standard"
	PresetLong     Preset = "long"
	PresetDraft    Preset = "draft"
)

// Presets lists the presets in display order.
func Presets() []Preset {
	return []Preset{PresetQuick, PresetStandard, PresetLong, PresetDraft}
}

// ApplyPreset modifies the config based on a game length preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "":
	case PresetQuick:
		cfg.Game.Pregame = true
		cfg.Game.PregameOnly = false
		cfg.Game.VictoryPoints = 5
		cfg.Game.MaxTurns = 100
	case PresetStandard:
		cfg.Game.Pregame = true
		cfg.Game.PregameOnly = false
		cfg.Game.VictoryPoints = 10
		cfg.Game.MaxTurns = 400
	case PresetLong:
		cfg.Game.Pregame = true
		cfg.Game.PregameOnly = false
		cfg.Game.VictoryPoints = 12
		cfg.Game.MaxTurns = 0
		cfg.Board.Terrain = board.LayoutRandom
		cfg.Board.Numbers = board.LayoutRandom
	case PresetDraft:
		cfg.Game.Pregame = true
		cfg.Game.PregameOnly = true
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
