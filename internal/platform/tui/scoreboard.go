package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-gym/internal/registry"
	"github.com/vovakirdan/arcade-gym/internal/storage"
)

const (
	maxScores = 100
	maxRuns   = 50
)

// BoardView selects what the scoreboard lists.
type BoardView int

const (
	ViewScores BoardView = iota // human high scores
	ViewRuns                    // agent evaluation runs
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Switch     key.Binding
	Back, Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Switch, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Switch, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Switch: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "scores/agent runs")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists high scores or evaluation runs per game.
type ScoreboardModel struct {
	games  []registry.Info
	cursor int
	view   BoardView
	store  *storage.Store
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	empty  bool
	err    error

	back     bool
	quitting bool
}

// NewScoreboardModel opens the scoreboard on the first game.
func NewScoreboardModel(store *storage.Store, view BoardView, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		view:   view,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == ViewRuns {
		return []table.Column{
			{Title: "Run", Width: 10},
			{Title: "Policy", Width: 16},
			{Title: "Seed", Width: 8},
			{Title: "Episodes", Width: 9},
			{Title: "Mean", Width: 9},
			{Title: "Date", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 16},
	}
}

// reload rebuilds the table for the current game and view.
func (m *ScoreboardModel) reload() {
	var rows []table.Row
	m.err = nil
	if m.store != nil && m.gameID() != "" {
		rows, m.err = m.loadRows()
	}
	m.empty = len(rows) == 0

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	m.table = t
}

func (m *ScoreboardModel) loadRows() ([]table.Row, error) {
	if m.view == ViewRuns {
		runs, err := m.store.RecentRuns(context.Background(), m.gameID(), maxRuns)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(runs))
		for i, r := range runs {
			rows[i] = table.Row{
				shortID(r.ID), r.Policy, strconv.FormatInt(r.Seed, 10),
				strconv.Itoa(r.Episodes), fmt.Sprintf("%.2f", r.MeanReward),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil
	}

	scores, err := m.store.TopScores(m.gameID(), maxScores)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	return rows, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init does nothing.
func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update handles navigation.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next) && len(m.games) > 0:
			m.cursor = (m.cursor + 1) % len(m.games)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev) && len(m.games) > 0:
			m.cursor = (m.cursor + len(m.games) - 1) % len(m.games)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tabs and the table.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	title := "HIGH SCORES"
	if m.view == ViewRuns {
		title = "AGENT RUNS"
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = menuActive.Render("[" + g.Title + "]")
		} else {
			tabs[i] = menuDim.Render(" " + g.Title + " ")
		}
	}

	var body string
	switch {
	case m.err != nil:
		body = "Cannot load: " + m.err.Error()
	case m.empty:
		body = menuDim.Italic(true).Padding(1, 4).Render("Nothing recorded yet.")
	default:
		body = m.table.View()
	}
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(frame.Render(body))
	b.WriteString("\n")
	b.WriteString(menuDim.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard shows the scoreboard; it reports whether the player
// asked to go back rather than quit.
func RunScoreboard(store *storage.Store, view BoardView, width, height int) (back bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, view, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.back, nil
}
