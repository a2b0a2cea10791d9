package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/registry"
	"github.com/vovakirdan/arcade-gym/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the game picker.
type MenuModel struct {
	games  []registry.Info
	best   map[string]int
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper

	selected   string
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists the registered games with their best scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		games:  registry.List(),
		best:   make(map[string]int),
		config: cfg,
		keys:   NewKeyMapper(false),
	}
	if store != nil {
		for _, g := range m.games {
			if hs, err := store.HighScore(g.ID); err == nil {
				m.best[g.ID] = hs
			}
		}
	}
	return m
}

// Init does nothing.
func (m MenuModel) Init() tea.Cmd { return nil }

// Update moves the cursor and handles selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapMenuKey(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.games)-1)
		case MenuActionSelect:
			if len(m.games) > 0 {
				m.selected = m.games[m.cursor].ID
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

// View draws the list.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" || m.scoreboard {
		return ""
	}
	w := m.config.ScreenW
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("A R C A D E   G Y M"), w))
	b.WriteString("\n\n")

	for i, g := range m.games {
		line := fmt.Sprintf("%-10s best %5d", g.Title, m.best[g.ID])
		if g.Gesture {
			line += "  ✋"
		}
		if i == m.cursor {
			line = menuActive.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render("↑/↓ move · enter play · tab scores · q quit"), w))
	b.WriteString("\n")
	return b.String()
}

// centerText pads text to sit in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the player chose.
type MenuResult struct {
	GameID     string
	Config     core.RuntimeConfig
	Scoreboard bool
	Quit       bool
}

// RunMenu shows the picker until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{
		GameID:     m.selected,
		Config:     m.config,
		Scoreboard: m.scoreboard,
		Quit:       m.quitting || (m.selected == "" && !m.scoreboard),
	}, nil
}
