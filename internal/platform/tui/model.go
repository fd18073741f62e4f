package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

// chromeRows is the number of terminal rows used by the status line and the
// help footer.
const chromeRows = 2

// Options configure a Model.
type Options struct {
	Game       config.DinoConfig
	Runtime    core.RuntimeConfig
	Difficulty string
	Title      string

	// Store records finished rounds. May be nil.
	Store *storage.Store
	// HighScores persists the best score. Nil keeps it in memory.
	HighScores dino.HighScores
	// Cues plays sound. Nil is silent.
	Cues dino.Cues

	Logger        *log.Logger
	ScreenshotDir string
}

// muter is implemented by cue players that can be switched off.
type muter interface {
	SetEnabled(bool)
	Enabled() bool
}

// Model is the Bubble Tea model that hosts one Driver.
type Model struct {
	driver     *dino.Driver
	hud        *HUD
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	opts       Options
	logger     *log.Logger
	epoch      time.Time
	roundStart time.Time
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model with an idle driver showing the start screen.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Title == "" {
		opts.Title = "DINO"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	hud := NewHUD(opts.Title)
	driver := dino.NewDriver(opts.Game, dino.Deps{
		View:       hud,
		Cues:       opts.Cues,
		HighScores: opts.HighScores,
		Rand:       rand.New(rand.NewSource(opts.Runtime.Seed)),
	})

	m := Model{
		driver: driver,
		hud:    hud,
		screen: core.NewScreen(1, 1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		logger: opts.Logger.WithPrefix("tui"),
		epoch:  time.Now(),
	}
	if mu, ok := opts.Cues.(muter); ok {
		hud.muted = !mu.Enabled()
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init waits for the first press; the frame loop only runs during a round.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, m.handleTick(time.Time(msg))

	case RearmMsg:
		m.driver.Rearm()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if mu, ok := m.opts.Cues.(muter); ok {
			mu.SetEnabled(!mu.Enabled())
			m.hud.muted = !mu.Enabled()
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionCapture:
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
	case core.ActionPress:
		if m.driver.Press() == dino.ScheduleFrame {
			m.roundStart = time.Now()
			m.logger.Debug("round started", "seed", m.opts.Runtime.Seed)
			return m, frameCmd(m.opts.Runtime.TickRate)
		}
	}
	return m, nil
}

// handleTick advances the driver to the frame time and honours its
// schedule.
func (m Model) handleTick(t time.Time) tea.Cmd {
	ts := float64(t.Sub(m.epoch).Microseconds()) / 1000
	switch m.driver.Tick(ts) {
	case dino.ScheduleFrame:
		return frameCmd(m.opts.Runtime.TickRate)
	case dino.ScheduleRearm:
		m.recordRound()
		return rearmCmd(m.driver.RestartDelay())
	}
	return nil
}

// recordRound stores the lost round. Failures only cost history.
func (m Model) recordRound() {
	score := m.driver.ScoreInt()
	m.logger.Info("round lost", "score", score, "best", m.driver.HighScore())
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRound(storage.RoundRecord{
		Score:      score,
		DurationMS: time.Since(m.roundStart).Milliseconds(),
		SpeedScale: m.driver.SpeedScale(),
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		m.logger.Warn("could not record round", "err", err)
	}
}

// resize fits the world into the terminal below the status line.
func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	}
	m.width, m.height = width, height
	worldRows := core.Max(1, height-chromeRows)
	m.screen.Resize(width, worldRows)
	m.driver.Resize(width, worldRows)
	m.help.Width = width
}

// saveScreenshot writes the current world view as plain text.
func (m Model) saveScreenshot() error {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("tui: home directory: %w", err)
		}
		dir = filepath.Join(home, ".dino", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: create %s: %w", dir, err)
	}

	name := fmt.Sprintf("dino_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// draw renders the world and the start screen into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.driver.Render(m.screen, m.hud.Scale())
	if m.hud.StartVisible() {
		m.hud.DrawStartScreen(m.screen)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	theme := m.hud.Theme()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.Line(m.width, theme),
		RenderScreen(m.screen, theme),
		theme.Muted.Render(m.help.View(m.keys)),
	)
}

// Driver exposes the hosted driver.
func (m Model) Driver() *dino.Driver { return m.driver }

// HUD exposes the view the driver reports to.
func (m Model) HUD() *HUD { return m.hud }

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
