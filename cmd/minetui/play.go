package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovalev/minetui/internal/config"
	"github.com/akovalev/minetui/internal/core"
	"github.com/akovalev/minetui/internal/mines"
	"github.com/akovalev/minetui/internal/platform/tui"
	"github.com/akovalev/minetui/internal/storage"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minesweeper",
	Long: `Start a game in the current terminal.

The board comes from the config file (--config, ~/.minetui/config.yaml,
or the built-in 10x10 default); the --width, --height, and --mines flags
override it. A mine count of 0 derives one sixth of the board area.

Examples:
  minetui play
  minetui play --width 30 --height 16 --mines 99
  minetui play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines (overrides config, 0 = derived)")
}

// boardParams resolves the board configuration from file plus flag overrides.
func boardParams(cmd *cobra.Command) (config.Config, mines.Params, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, mines.Params{}, err
	}

	if cmd.Flags().Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if cmd.Flags().Changed("mines") {
		cfg.Board.Mines = flagMines
	}

	params, err := cfg.Params()
	return cfg, params, err
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, params, err := boardParams(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := mines.NewSession(params)
	game.SetTheme(fileCfg.GameTheme())

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, tui.BoardParams{
		Width:  params.Width,
		Height: params.Height,
		Mines:  params.Mines,
	})

	// Close the store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
