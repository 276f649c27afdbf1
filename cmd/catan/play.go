package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Abdur667/CS182-Final/internal/catanlog"
	"github.com/Abdur667/CS182-Final/internal/config"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
	"github.com/Abdur667/CS182-Final/internal/render"
	"github.com/Abdur667/CS182-Final/internal/sim"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

var (
	flagPreset    string
	flagSeed      int64
	flagGames     int
	flagStdoutLog bool
	flagNoSave    bool
	flagVerbose   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play games between the configured agents",
	Long: `Play one or more complete games. Every seat is played by the agent
named in the config; dice, robber moves and steals are random.

Each game writes a replayable log to log.dir (or stdout with --stdout-log)
and is stored in the games database unless --no-save is given.

Presets:
  quick    - 5 victory points, at most 100 turns
  standard - 10 victory points, at most 400 turns
  long     - 12 victory points, no turn limit, random terrain and numbers
  draft    - stop after the opening draft

Examples:
  catan play
  catan play --preset draft --games 100 --no-save
  catan play --seed 7 --stdout-log
  catan play --config ./my-table.yaml -v`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Game length preset: quick, standard, long, draft")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	playCmd.Flags().IntVarP(&flagGames, "games", "n", 1, "Number of games to play")
	playCmd.Flags().BoolVar(&flagStdoutLog, "stdout-log", false, "Write the game log to stdout")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store results")
	playCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug diagnostics on stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	if flagStdoutLog {
		cfg.Log.Enabled = true
		cfg.Log.Stdout = true
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}
	if err := applyPresetAndValidate(&cfg); err != nil {
		fatalf("%v", err)
	}
	if flagGames < 1 {
		fatalf("--games must be at least 1")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "catan",
	})

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(cfg.Storage.DB)
		if err != nil {
			fatalf("opening games database: %v", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	styled := term.IsTerminal(int(os.Stdout.Fd())) && !cfg.Log.Stdout

	wins := make(map[pieces.Player]int)
	for i := range flagGames {
		rep, meta, err := playOne(ctx, cfg, seed+int64(i), logger)
		if err != nil {
			logger.Error("game failed", "game", i+1, "seed", seed+int64(i), "err", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		wins[rep.Winner]++

		id := ""
		if store != nil {
			id, err = store.SaveReport(rep, meta)
			if err != nil {
				logger.Error("saving game", "err", err)
			}
		}
		if flagGames == 1 {
			fmt.Print(render.Report(rep, styled))
			if id != "" {
				fmt.Printf("Saved as %s\n", id)
			}
		} else {
			logger.Info("game over", "game", i+1, "winner", rep.Winner, "turns", rep.Turns, "id", id)
		}
	}

	if flagGames > 1 {
		players, _, _ := cfg.Seating()
		fmt.Printf("Wins over %d games:\n", flagGames)
		for _, p := range players {
			fmt.Printf("  %-18s  %d\n", p, wins[p])
		}
	}
}

// playOne plays the game for one seed to the end, writing its log when
// enabled.
func playOne(ctx context.Context, cfg config.Config, seed int64, logger *log.Logger) (*game.Report, storage.Meta, error) {
	var sink catanlog.Sink
	var writer *catanlog.Writer
	logPath := ""
	if cfg.Log.Enabled {
		out, path, err := openGameLog(cfg.Log, seed)
		if err != nil {
			return nil, storage.Meta{Seed: seed}, err
		}
		defer out.Close()
		logPath = path
		writer = catanlog.NewWriter(out, quartz.NewReal())
		sink = writer
	}

	tbl, err := sim.NewTable(cfg, seed, sink, logger)
	if err != nil {
		return nil, storage.Meta{Seed: seed}, err
	}
	tbl.Meta.LogPath = logPath
	tbl.Game.AddObserver(game.ObserverFunc(func(g *game.Game) {
		logger.Debug("game changed", "state", g.State(), "turn", g.Turn(), "player", g.CurPlayer())
	}))

	steps, err := tbl.Runner.Run(ctx)
	if err != nil {
		return nil, tbl.Meta, err
	}
	if writer != nil && writer.Err() != nil {
		logger.Warn("game log incomplete", "path", logPath, "err", writer.Err())
	}

	rep, ok := tbl.Game.Report()
	if !ok {
		return nil, tbl.Meta, fmt.Errorf("game ended without a report")
	}
	logger.Debug("game finished", "seed", seed, "steps", steps, "turns", rep.Turns)
	return rep, tbl.Meta, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openGameLog returns the destination of one game's log and its path.
func openGameLog(cfg config.LogConfig, seed int64) (io.WriteCloser, string, error) {
	if cfg.Stdout {
		return nopCloser{os.Stdout}, "", nil
	}
	dir, err := config.ExpandHome(cfg.Dir)
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	name := fmt.Sprintf("catan-%s-%d.log", time.Now().Format("20060102-150405"), seed)
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("creating game log: %w", err)
	}
	return f, path, nil
}
