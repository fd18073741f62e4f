package highscore

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/storage"
)

// KV is the subset of storage.Store the SQLite cell needs.
type KV interface {
	GetValue(key string) (string, error)
	RaiseValue(key string, value int) error
}

// SQLiteCell keeps the high score in the key/value table of the score
// database, next to the round history.
type SQLiteCell struct {
	kv     KV
	logger *log.Logger
}

// NewSQLiteCell creates a cell backed by kv.
func NewSQLiteCell(kv KV, logger *log.Logger) *SQLiteCell {
	if logger == nil {
		logger = log.Default()
	}
	return &SQLiteCell{kv: kv, logger: logger.WithPrefix("highscore")}
}

// LoadHighScore reads the cell, returning 0 when it is missing or unreadable.
func (c *SQLiteCell) LoadHighScore() int {
	raw, err := c.kv.GetValue(Key)
	if errors.Is(err, storage.ErrNotFound) {
		return 0
	}
	if err != nil {
		c.logger.Warn("load high score", "err", err)
		return 0
	}
	return Parse(raw)
}

// SaveHighScore writes score unless the cell already holds a higher one.
// Failures are logged and dropped.
func (c *SQLiteCell) SaveHighScore(score int) {
	if score < 0 {
		score = 0
	}
	if err := c.kv.RaiseValue(Key, score); err != nil {
		c.logger.Warn("save high score", "score", score, "err", err)
	}
}
