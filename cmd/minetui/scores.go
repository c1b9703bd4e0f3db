package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovalev/minetui/internal/platform/tui"
	"github.com/akovalev/minetui/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times and statistics",
	Long: `Display the fastest wins for a board configuration.

Without flags, shows the board from the config file (the 10x10 default).
With --browse, opens an interactive browser over every board you have
played; with --recent, lists the latest finished games across all
boards.

Examples:
  minetui scores
  minetui scores --width 30 --height 16 --mines 99
  minetui scores --browse
  minetui scores --recent
  minetui scores --width 30 --height 16 --mines 99 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive results browser")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games for the selected board")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest finished games across all boards")
	scoresCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	scoresCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	scoresCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	scoresCmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines (overrides config, 0 = derived)")
}

func runScores(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running results browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagRecent {
		printRecent(store)
		return
	}

	_, params, err := boardParams(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearResults(params.Width, params.Height, params.Mines); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %dx%d, %d mines\n", params.Width, params.Height, params.Mines)
		return
	}

	best, err := store.BestTimes(params.Width, params.Height, params.Mines, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.BoardStats(params.Width, params.Height, params.Mines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %dx%d, %d mines\n", params.Width, params.Height, params.Mines)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minetui play' to set the first time!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")

	// Print times
	for i, r := range best {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, fmt.Sprintf("%ds", r.Duration), dateStr)
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Win rate: %.0f%%\n", stats.Games, stats.Wins, stats.WinRate()*100)
}

// printRecent lists the most recent finished games across all boards.
func printRecent(store *storage.Store) {
	recent, err := store.RecentResults(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(recent) == 0 {
		fmt.Println("No finished games recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-7s  %-8s  %s\n", "Board", "Result", "Time", "Date")
	fmt.Printf("  %-12s  %-7s  %-8s  %s\n", "-----", "------", "----", "----")
	for _, r := range recent {
		outcome := "loss"
		if r.Won {
			outcome = "win"
		}
		fmt.Printf("  %-12s  %-7s  %-8s  %s\n",
			r.BoardSize(), outcome, fmt.Sprintf("%ds", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
