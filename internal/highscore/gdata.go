package highscore

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

const gdataObject = "dino"

// GdataCell stores the high score as decimal text in the per-user data
// directory managed by gdata.
type GdataCell struct {
	manager *gdata.Manager
	logger  *log.Logger
}

// OpenGdata opens the gdata store for appName.
func OpenGdata(appName string, logger *log.Logger) (*GdataCell, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: open gdata %q: %w", appName, err)
	}
	return NewGdataCell(manager, logger), nil
}

// NewGdataCell wraps an already opened manager. A nil manager gives a cell
// that always loads 0 and drops saves.
func NewGdataCell(manager *gdata.Manager, logger *log.Logger) *GdataCell {
	if logger == nil {
		logger = log.Default()
	}
	return &GdataCell{manager: manager, logger: logger.WithPrefix("highscore")}
}

// LoadHighScore reads the stored value, returning 0 when it is missing or
// unreadable.
func (c *GdataCell) LoadHighScore() int {
	if c.manager == nil || !c.manager.ObjectPropExists(gdataObject, Key) {
		return 0
	}
	data, err := c.manager.LoadObjectProp(gdataObject, Key)
	if err != nil {
		c.logger.Warn("load high score", "err", err)
		return 0
	}
	return Parse(string(data))
}

// SaveHighScore writes score. Failures are logged and dropped.
func (c *GdataCell) SaveHighScore(score int) {
	if c.manager == nil {
		return
	}
	if err := c.manager.SaveObjectProp(gdataObject, Key, []byte(Format(score))); err != nil {
		c.logger.Warn("save high score", "score", score, "err", err)
		return
	}
	c.logger.Debug("high score saved", "score", score)
}
