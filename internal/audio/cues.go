// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Options configure the cue player.
type Options struct {
	Enabled bool
	Volume  float64 // 0..1
	Logger  *log.Logger
}

// Cues plays the checkpoint and lose cues. The speaker is opened on the
// first cue; if that fails the player logs once and stays silent.
// All methods are safe for concurrent use and never block on playback.
type Cues struct {
	mu       sync.Mutex
	enabled  bool
	volume   float64
	logger   *log.Logger
	mixer    *beep.Mixer
	started  bool
	failed   bool
	initFunc func() error
}

// New creates a cue player. Nothing touches the audio device until a cue
// is played.
func New(opts Options) *Cues {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 1
	}
	c := &Cues{
		enabled: opts.Enabled,
		volume:  opts.Volume,
		logger:  opts.Logger.WithPrefix("audio"),
		mixer:   &beep.Mixer{},
	}
	c.initFunc = c.openSpeaker
	return c
}

func (c *Cues) openSpeaker() error {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	return nil
}

// ready opens the speaker on first use. Callers hold c.mu.
func (c *Cues) ready() bool {
	if !c.enabled || c.failed {
		return false
	}
	if c.started {
		return true
	}
	if err := c.initFunc(); err != nil {
		c.failed = true
		c.logger.Warn("sound disabled", "err", err)
		return false
	}
	c.started = true
	c.logger.Debug("speaker opened", "rate", int(sampleRate))
	return true
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready() {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// PlayCheckpointCue plays the chirp for every 100 points.
func (c *Cues) PlayCheckpointCue() {
	c.play(checkpointSound(sampleRate, c.volume))
}

// PlayLoseCue plays the buzz for a lost round.
func (c *Cues) PlayLoseCue() {
	c.play(loseSound(sampleRate, c.volume))
}

// SetEnabled turns cues on or off at runtime.
func (c *Cues) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Enabled reports whether cues will be played.
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled && !c.failed
}

// Close silences any cue still playing.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}
