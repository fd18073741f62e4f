package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/storage"
)

// maxRounds is how many rounds the scoreboard loads.
const maxRounds = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best recorded rounds.
type ScoreboardModel struct {
	rounds   []storage.RoundRecord
	stats    *storage.Stats
	best     int
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the given rounds. best is the
// persisted high score, which may exceed every recorded round.
func NewScoreboardModel(rounds []storage.RoundRecord, stats *storage.Stats, best, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		rounds: rounds,
		stats:  stats,
		best:   best,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// ScoreColumns are the columns of the round table.
func ScoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Speed", Width: 7},
		{Title: "Level", Width: 8},
		{Title: "Date", Width: 14},
	}
}

// ScoreRows converts rounds into table rows.
func ScoreRows(rounds []storage.RoundRecord) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			(time.Duration(r.DurationMS) * time.Millisecond).Truncate(100 * time.Millisecond).String(),
			fmt.Sprintf("x%.2f", r.SpeedScale),
			r.Difficulty,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *ScoreboardModel) createTable() table.Model {
	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(ScoreColumns()),
		table.WithRows(ScoreRows(m.rounds)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("DINO HIGH SCORES   best %d", m.best)))
	b.WriteString("\n")
	if m.stats != nil && m.stats.Rounds > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d rounds, average %.0f, last played %s",
			m.stats.Rounds, m.stats.AvgScore, m.stats.LastPlayed.Local().Format("Jan 02 15:04"))))
	}
	b.WriteString("\n\n")

	if len(m.rounds) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
		b.WriteString(boxStyle.Render(empty.Render("No rounds recorded yet.\nRun `dino play` to set a high score!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard loads the history from store and shows it interactively.
func RunScoreboard(store *storage.Store, best, width, height int) error {
	rounds, err := store.TopRounds(maxRounds)
	if err != nil {
		return err
	}
	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewScoreboardModel(rounds, stats, best, width, height), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
