// minetui is a terminal minesweeper.
//
// Usage:
//
//	minetui play             - Play a game in the current terminal
//	minetui serve            - Start an SSH server for remote play
//	minetui scores           - Show best times and statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for a reproducible mine layout
//	--db <path>     - Set database path (default: ~/.minetui/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minetui",
	Short: "Minesweeper in your terminal",
	Long: `minetui is a terminal minesweeper. Uncover all the cells that don't
hide a mine; uncover a mine and it's game over. Uncovering a safe cell
shows the number of adjacent mines.

Controls:
  Arrow keys / hjkl  - Move the cursor
  Space / Z          - Uncover a cell (chord on an uncovered number)
  F / X              - Toggle a flag
  N                  - New game
  Q / Ctrl+C         - Quit

Examples:
  minetui play
  minetui play --width 30 --height 16 --mines 99
  minetui serve --ssh :2222
  minetui scores --browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minetui/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
