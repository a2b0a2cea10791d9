package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/registry"
	"github.com/vovakirdan/arcade-gym/internal/storage"
)

// ScreenshotDir is where ctrl+s saves plain-text screenshots, under $HOME.
const ScreenshotDir = ".arcadegym/screenshots"

// Model runs one game inside Bubble Tea.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	logger   *log.Logger
	interval time.Duration

	frame      core.InputFrame
	state      core.GameState
	quitting   bool
	scoreSaved bool
}

// NewModel prepares a model for game. A zero seed is replaced by the
// current time; a nil logger discards.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	text := false
	if t, ok := game.(registry.TextInput); ok {
		text = t.WantsText()
	}

	game.Reset(cfg)
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		keys:     NewKeyMapper(text),
		logger:   logger.With("game", game.ID()),
		interval: tickInterval(cfg.TickRate),
		frame:    core.NewInputFrame(),
		state:    game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.interval)
}

// Update handles keys, resizes and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		if m.keys.MapKey(msg, &m.frame) {
			m.quitting = true
			m.saveScore()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		// The playfield is scaled to the screen, so only a fresh round
		// needs the new size.
		if m.state.GameOver {
			return m, nil
		}
		m.game.Reset(m.config)
		m.state = m.game.State()
		return m, nil

	case TickMsg:
		return m.tick()
	}
	return m, nil
}

func (m Model) wantsRestart() bool {
	return m.frame.Has(core.ActionRestart) ||
		slices.Contains(m.frame.Text, 'r') || slices.Contains(m.frame.Text, 'R')
}

func (m Model) tick() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		if m.wantsRestart() {
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(m.config)
			m.state = m.game.State()
			m.scoreSaved = false
			m.logger.Info("game restarted", "seed", m.config.Seed)
		}
		m.frame.Clear()
		return m, tickCmd(m.interval)
	}

	res := m.game.Step(m.frame)
	m.state = res.State
	for _, ev := range res.Events {
		m.logger.Debug("event", "what", ev, "score", m.state.Score)
	}
	if m.state.GameOver {
		m.logger.Info("game over", "score", m.state.Score)
		m.saveScore()
	}
	m.frame.Clear()
	return m, tickCmd(m.interval)
}

// saveScore records a finished or abandoned round once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.state.Score); err != nil {
		m.logger.Warn("score not saved", "err", err)
	}
}

func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ScreenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	m.game.Render(m.screen)
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not written", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState { return m.state }

// Run plays game until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	// Stdin may be carrying a landmark stream; read keys from the terminal.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(NewModel(game, store, cfg, logger), opts...)
	_, err := p.Run()
	return err
}
