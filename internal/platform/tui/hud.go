package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// HUD is the terminal implementation of the game's View. It only stores
// what the driver reports; Model draws it every frame.
type HUD struct {
	scale        float64
	score        string
	hiText       string
	startVisible bool
	dark         bool
	muted        bool
	title        string
}

// NewHUD creates a HUD with the start screen hidden until the driver
// asks for it.
func NewHUD(title string) *HUD {
	return &HUD{scale: 1, score: "0", title: title}
}

// SetScale records how many cells one world unit occupies.
func (h *HUD) SetScale(cellsPerUnit float64) { h.scale = cellsPerUnit }

// SetScore sets the score text shown in the status line.
func (h *HUD) SetScore(text string) { h.score = text }

// SetHighScoreText sets the "HI:" text. Empty hides it.
func (h *HUD) SetHighScoreText(text string) { h.hiText = text }

// ShowStartScreen overlays the start prompt on the next frames.
func (h *HUD) ShowStartScreen() { h.startVisible = true }

// HideStartScreen removes the start prompt.
func (h *HUD) HideStartScreen() { h.startVisible = false }

// SetTheme switches between the day and night palettes.
func (h *HUD) SetTheme(dark bool) { h.dark = dark }

// Scale returns the last scale reported by the driver.
func (h *HUD) Scale() float64 { return h.scale }

// Dark reports whether the night palette is active.
func (h *HUD) Dark() bool { return h.dark }

// StartVisible reports whether the start screen is shown.
func (h *HUD) StartVisible() bool { return h.startVisible }

// Theme returns the palette for the current theme.
func (h *HUD) Theme() Theme {
	if h.dark {
		return DarkTheme()
	}
	return LightTheme()
}

// Line renders the single status line above the world.
func (h *HUD) Line(width int, theme Theme) string {
	left := theme.Title.Render(h.title)
	if h.muted {
		left += theme.Muted.Render("  [muted]")
	}

	var right strings.Builder
	if h.hiText != "" {
		right.WriteString(theme.Muted.Render(h.hiText))
		right.WriteString("  ")
	}
	right.WriteString(theme.Cells[core.ColorHUD].Render(padScore(h.score)))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right.String())
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right.String()
}

// padScore left-pads the score with zeros to five digits.
func padScore(s string) string {
	if n := 5 - len(s); n > 0 {
		return strings.Repeat("0", n) + s
	}
	return s
}

// DrawStartScreen overlays the start prompt in the middle of s.
func (h *HUD) DrawStartScreen(s *core.Screen) {
	lines := []string{"D I N O   R U N", "", "press SPACE to start"}
	if h.hiText != "" {
		lines = append(lines, "", "best "+strings.TrimPrefix(h.hiText, "HI:"))
	}

	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 4
	hgt := len(lines) + 2
	box := core.NewBox((s.Width()-w)/2, (s.Height()-hgt)/2, w, hgt)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	for i, l := range lines {
		x := box.X + (w-len([]rune(l)))/2
		color := core.ColorHUD
		if i == 0 {
			color = core.ColorAccent
		}
		s.DrawTextColor(x, box.Y+1+i, l, color)
	}
}
