package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/render"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board a config and seed produce",
	Long: `Print the tiles, numbers and ports of the board that 'catan play'
would build for the same config and seed. The robber starts on the tile
marked R.

Examples:
  catan board
  catan board --seed 7`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed)")
}

func runBoard(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	if err := cfg.Board.Validate(); err != nil {
		fatalf("%v", err)
	}
	seed := cfg.Game.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}

	b := board.New(cfg.Board, rand.New(rand.NewSource(seed)))
	fmt.Print(render.Board(b, term.IsTerminal(int(os.Stdout.Fd()))))
}
