// Package highscore persists the single best-score cell used by the game.
//
// Every cell implements the game's HighScores collaborator: loads never fail
// (absent or malformed data reads as 0) and save failures are logged and
// swallowed so the round loop never sees an I/O error.
package highscore

import (
	"strconv"
	"strings"
	"sync"
)

// Key is the property name the high score is stored under.
const Key = "highScore"

// Parse converts a stored value to a score. Absent, malformed and negative
// values all read as 0.
func Parse(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Format renders a score the way it is stored.
func Format(score int) string {
	if score < 0 {
		score = 0
	}
	return strconv.Itoa(score)
}

// MemoryCell keeps the high score in memory. Safe for concurrent use so a
// single cell can be shared by several SSH sessions.
type MemoryCell struct {
	mu    sync.Mutex
	value int
}

// NewMemoryCell creates a cell holding initial.
func NewMemoryCell(initial int) *MemoryCell {
	if initial < 0 {
		initial = 0
	}
	return &MemoryCell{value: initial}
}

// LoadHighScore returns the stored value.
func (c *MemoryCell) LoadHighScore() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// SaveHighScore stores score if it beats the stored value.
func (c *MemoryCell) SaveHighScore(score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if score > c.value {
		c.value = score
	}
}
