package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own round. All sessions share the round
history and the best score, which lives in the scores database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dino/host_key

Examples:
  dino serve                           # Listen on :23234 with auto-generated key
  dino serve --ssh :2222               # Listen on port 2222
  dino serve --host-key ./my_host_key  # Use specific host key
  dino serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// The server has no TUI of its own; log to stderr unless told otherwise.
	if !cmd.Flags().Changed("log-file") {
		flagLogFile = "-"
	}
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = flagFPS
	serverCfg.Game = cfg
	serverCfg.Difficulty = string(preset)
	serverCfg.Store = store
	serverCfg.HighScores = openHighScores(store, logger, true)
	serverCfg.Logger = logger

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting dino SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
