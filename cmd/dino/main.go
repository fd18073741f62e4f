// dino is a Chrome Dino-style endless runner for the terminal.
//
// Usage:
//
//	dino play       - Play a round in this terminal
//	dino scores     - Show the best recorded rounds
//	dino serve      - Start SSH server for remote play
//	dino config     - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set round history database (default: ~/.dino/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--highscore <kind>    - Where the best score lives: gdata, sqlite or memory
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination (default: ~/.dino/dino.log, "-" for stderr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagHighScore  string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Run - jump the cacti in your terminal",
	Long: `Dino Run is an endless runner: press space to start, press it again
to jump, and survive as long as the world keeps speeding up.

Available commands:
  play     - Play in this terminal
  scores   - View the best recorded rounds
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  dino play
  dino play --difficulty hard
  dino scores
  dino serve --ssh :2222`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.dino/scores.db", "Path to round history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagHighScore, "highscore", "gdata", "High score cell: gdata, sqlite, memory")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.dino/dino.log", "Log file path (\"-\" for stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
