// catan simulates settlement-building board games between computer agents.
//
// Usage:
//
//	catan play               - Play one or more games and store the results
//	catan board              - Print the board a config and seed produce
//	catan agents             - List available agents
//	catan games              - Show recently stored games
//	catan stats              - Show per-player totals
//	catan config             - Print the default configuration
//	catan watch              - Watch a game step by step in the terminal
//	catan serve              - Serve the viewer over SSH
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.catan/config.yaml, ./configs/catan.yaml)
//	--db <path>     - Set database path (default from config: ~/.catan/catan.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Abdur667/CS182-Final/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catan",
	Short: "Catan - simulate settlement-building games between agents",
	Long: `Catan runs the rules engine of a four-player settlement-building
board game with computer agents in every seat, writes a replayable game
log and keeps finished games in a local database.

Available commands:
  play     - Play games and store the results
  board    - Print the generated board
  agents   - List available agents
  games    - Show stored games
  stats    - Show per-player totals
  config   - Print the default configuration
  watch    - Watch a game step by step
  serve    - Serve the viewer over SSH

Examples:
  catan play
  catan play --preset quick --games 20
  catan play --seed 7 --stdout-log
  catan games --limit 5
  catan config > ~/.catan/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to games database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config and applies the --db override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	return cfg, nil
}

// applyPresetAndValidate applies --preset and --seed, then validates.
func applyPresetAndValidate(cfg *config.Config) error {
	if err := config.ApplyPreset(cfg, config.Preset(flagPreset)); err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config:\n%w", err)
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
