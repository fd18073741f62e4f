package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/highscore"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

// appName names the per-user gdata directory.
const appName = "tui-dino"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the process logger. The TUI owns the terminal, so logs
// go to a file unless --log-file is "-". The returned closer must be called
// on exit.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "-" && flagLogFile != "" {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "dino",
	})
	log.SetDefault(logger)
	return logger, closer, nil
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.DinoConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DinoConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DinoConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return cfg, preset, nil
}

// openStore opens the round history. A failure is logged and play goes on
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openHighScores picks the high-score cell named by --highscore. concurrent
// must be set when several drivers share the cell.
func openHighScores(store *storage.Store, logger *log.Logger, concurrent bool) dino.HighScores {
	kind := flagHighScore
	if concurrent && kind == "gdata" {
		kind = "sqlite"
	}

	switch kind {
	case "gdata":
		cell, err := highscore.OpenGdata(appName, logger)
		if err == nil {
			return cell
		}
		logger.Warn("gdata unavailable, falling back", "err", err)
	case "sqlite":
		if store != nil {
			return highscore.NewSQLiteCell(store, logger)
		}
		logger.Warn("sqlite high score needs the scores database, falling back")
	case "memory":
	default:
		logger.Warn("unknown --highscore kind", "kind", kind)
	}

	initial := 0
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			initial = best
		}
	}
	return highscore.NewMemoryCell(initial)
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
