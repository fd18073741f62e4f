// Package tui provides the Bubble Tea host for the runner.
// It drives the frame loop, maps keys to the single press input and draws
// the world, HUD and start screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per displayed frame while a round is running.
type TickMsg time.Time

// RearmMsg is sent after the restart delay that follows a lost round.
type RearmMsg struct{}

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// rearmCmd fires RearmMsg once delay has passed.
func rearmCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RearmMsg{}
	})
}
