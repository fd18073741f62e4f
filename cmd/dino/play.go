package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/audio"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up/W  - Start a round, then jump
  M           - Sound on/off
  Ctrl+S      - Save a text screenshot
  ?           - Toggle help
  Q/Esc       - Quit

Difficulty options:
  easy   - Speed grows at half the normal rate
  normal - The configured progression
  hard   - Start 50% faster, speed grows twice as fast
  fixed  - Speed never grows

Examples:
  dino play
  dino play --difficulty easy
  dino play --seed 42 --mute
  dino play --config ./my-dino.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Cue volume between 0 and 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	cues := audio.New(audio.Options{
		Enabled: !flagMute,
		Volume:  flagVolume,
		Logger:  logger,
	})
	defer cues.Close()

	width, height := terminalSize()
	logger.Info("starting", "difficulty", preset, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: string(preset),
		Store:      store,
		HighScores: openHighScores(store, logger, false),
		Cues:       cues,
		Logger:     logger,
	})
}
