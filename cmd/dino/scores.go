package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/platform/tui"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded rounds",
	Long: `Display the best recorded rounds.

In a terminal the table is interactive; with --plain or when stdout is
not a terminal it is printed once.

Examples:
  dino scores
  dino scores --plain --limit 5
  dino scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to print with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the table without an interactive view")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the round history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Round history cleared.")
		return nil
	}

	best := openHighScores(store, logger, false).LoadHighScore()

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunScoreboard(store, best, width, height)
	}

	rounds, err := store.TopRounds(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best score: %d\n\n", best)
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet. Run `dino play` to set one!")
		return nil
	}

	t := table.New(
		table.WithColumns(tui.ScoreColumns()),
		table.WithRows(tui.ScoreRows(rounds)),
		table.WithHeight(len(rounds)+1),
	)
	fmt.Println(t.View())
	return nil
}
