package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Theme maps semantic colors to terminal styles.
type Theme struct {
	Name   string
	Cells  map[core.Color]lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// LightTheme is the daytime palette.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
			core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			core.ColorDanger:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		},
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")),
	}
}

// DarkTheme is the night palette toggled by the score.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorDanger:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		},
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := theme.Cells[startColor]
			if !ok {
				style = theme.Cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
