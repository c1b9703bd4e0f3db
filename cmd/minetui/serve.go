package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akovalev/minetui/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minetui SSH server",
	Long: `Start an SSH server that lets users connect and play minesweeper.

Each SSH connection gets its own board; results are stored per-server
(all users share the same database). The board configuration follows the
same config file and flag overrides as 'minetui play'.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.minetui/host_key

Examples:
  minetui serve                           # Listen on :23234 with auto-generated key
  minetui serve --ssh :2222               # Listen on port 2222
  minetui serve --host-key ./my_host_key  # Use specific host key
  minetui serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	serveCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	serveCmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines (overrides config, 0 = derived)")
}

func runServe(cmd *cobra.Command, _ []string) {
	fileCfg, params, err := boardParams(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Board:       params,
		Theme:       fileCfg.GameTheme(),
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting minetui SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
