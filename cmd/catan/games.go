package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Abdur667/CS182-Final/internal/render"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var gamesCmd = &cobra.Command{
	Use:   "games [id]",
	Short: "Show stored games",
	Long: `List the most recently finished games, or show one game in detail.

Examples:
  catan games
  catan games --limit 5
  catan games 0190a1b2-...
  catan games --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGames,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-player totals",
	Long:  `Aggregate wins and average victory points per player name over every stored game.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func init() {
	gamesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to list")
	gamesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored games")
}

func openStore() *storage.Store {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fatalf("opening games database: %v", err)
	}
	return store
}

func runGames(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("All games deleted.")
		return
	}

	if len(args) == 1 {
		showGame(store, args[0])
		return
	}

	records, err := store.RecentGames(flagLimit)
	if err != nil {
		fatalf("%v", err)
	}
	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'catan play' to play the first one!")
		return
	}
	fmt.Print(render.Games(records, term.IsTerminal(int(os.Stdout.Fd()))))
}

func showGame(store *storage.Store, id string) {
	rec, err := store.GameByID(id)
	if err != nil {
		fatalf("%v", err)
	}
	if rec == nil {
		fatalf("no game %q", id)
	}

	fmt.Printf("Game %s\n", rec.ID)
	fmt.Printf("  Ended:  %s\n", rec.EndedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Turns:  %d\n", rec.Turns)
	fmt.Printf("  Seed:   %d\n", rec.Seed)
	if rec.LogPath != "" {
		fmt.Printf("  Log:    %s\n", rec.LogPath)
	}
	fmt.Println()

	fmt.Printf("  %-4s  %-18s  %-8s  %-3s  %-5s  %s\n", "Seat", "Player", "Agent", "VP", "S/C/R", "Winner")
	for _, p := range rec.Players {
		mark := ""
		if p.Seat == rec.Winner.Seat {
			mark = "*"
		}
		fmt.Printf("  %-4d  %-18s  %-8s  %-3d  %-5s  %s\n",
			p.Seat,
			fmt.Sprintf("%s (%s)", p.Color, p.Name),
			p.Agent,
			p.Points,
			fmt.Sprintf("%d/%d/%d", p.Settlements, p.Cities, p.Roads),
			mark)
	}
}

func runStats(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	stats, err := store.PlayerStats()
	if err != nil {
		fatalf("%v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}
	fmt.Print(render.Stats(stats, term.IsTerminal(int(os.Stdout.Fd()))))
}
