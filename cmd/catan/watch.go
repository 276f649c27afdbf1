package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Abdur667/CS182-Final/internal/storage"
	"github.com/Abdur667/CS182-Final/internal/tui"
)

var flagInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch agents play in the terminal",
	Long: `Open a full-screen viewer that plays a game one agent decision at a
time. Finished games are stored like 'catan play' stores them.

Controls:
  Space/P    - Pause or resume
  →/L/N      - Redo, or step once when there is nothing to redo
  ←/H/U      - Undo one action
  +/-        - Faster/slower
  R          - New game with the next seed
  ?          - All key bindings
  Q/Ctrl+C   - Quit

Examples:
  catan watch
  catan watch --preset quick --interval 100ms
  catan watch --seed 7 --no-save`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagPreset, "preset", "", "Game length preset: quick, standard, long, draft")
	watchCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	watchCmd.Flags().DurationVar(&flagInterval, "interval", tui.DefaultInterval, "Delay between steps")
	watchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store results")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	if err := applyPresetAndValidate(&cfg); err != nil {
		fatalf("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The viewer owns the screen, so diagnostics only go to stderr on error.
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel, Prefix: "catan"})

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(cfg.Storage.DB)
		if err != nil {
			fatalf("opening games database: %v", err)
		}
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Config:   cfg,
		Seed:     cfg.Game.Seed,
		Interval: flagInterval,
		Store:    store,
		Logger:   logger,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		fatalf("%v", err)
	}
}
