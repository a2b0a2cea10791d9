// Package tusmo is a word-guessing game: find the hidden word in six
// tries, the first letter given. Letters are typed, picked with a key
// cursor, or pinched on a virtual keyboard through hand tracking.
package tusmo

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/gesture"
	"github.com/vovakirdan/arcade-gym/internal/registry"
)

// PointsPerSpareRow is awarded for each unused row on a win, plus one
// row's worth for the win itself.
const PointsPerSpareRow = 100

var (
	settingsMu sync.RWMutex
	configPath string
)

// SetConfigPath sets the YAML file read on every reset; "" uses the
// search path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

func loadConfig() (config.TusmoConfig, error) {
	settingsMu.RLock()
	path := configPath
	settingsMu.RUnlock()
	return config.LoadTusmo(path)
}

// Game implements registry.Game.
type Game struct {
	cfg      config.TusmoConfig
	board    *Board
	keyboard *Keyboard
	presser  *Presser
	cell     *gesture.Cell

	hoverRow, hoverCol int
	hovering           bool
	pinched            bool

	tick    uint64
	paused  bool
	message string
	err     error
}

// New creates a word game.
func New() *Game { return &Game{} }

// ID returns "tusmo".
func (g *Game) ID() string { return "tusmo" }

// Title returns the display name.
func (g *Game) Title() string { return "Tusmo" }

// WantsText reports that letter keys should arrive as typed text.
func (g *Game) WantsText() bool { return true }

// AttachGesture lets the index fingertip act as a pointer over the
// virtual keyboard; a pinch presses the key under it. The mode is unused.
func (g *Game) AttachGesture(cell *gesture.Cell, _ gesture.Mode) {
	g.cell = cell
}

// Reset draws a new secret word.
func (g *Game) Reset(rt core.RuntimeConfig) {
	*g = Game{cell: g.cell}

	cfg, err := loadConfig()
	if err != nil {
		g.err = err
		return
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(rt.Seed))
	word := cfg.Words[rng.Intn(len(cfg.Words))]
	g.board, g.err = NewBoard(word, cfg.MaxAttempts)
	g.keyboard = NewKeyboard(cfg.Keyboard)
	g.presser = NewPresser(cfg.Keyboard.CooldownTicks(rt.TickRate))
	if g.board != nil {
		g.message = fmt.Sprintf("Find the word (%d letters)", g.board.Len())
	}
}

// Board returns the round in progress, nil if Reset failed.
func (g *Game) Board() *Board { return g.board }

// Keyboard returns the virtual keyboard.
func (g *Game) Keyboard() *Keyboard { return g.keyboard }

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []string
	if g.board == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.board.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.board.Over() {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, r := range in.Text {
		g.board.Type(r)
	}
	if in.Has(core.ActionDelete) {
		g.board.Backspace()
	}

	switch {
	case in.Has(core.ActionUp):
		g.keyboard.MoveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.keyboard.MoveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.keyboard.MoveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.keyboard.MoveCursor(0, 1)
	}
	if in.Has(core.ActionPress) {
		events = g.press(Layout[g.keyboard.cursorRow][g.keyboard.cursorCol], events)
	}

	events = g.pointer(events)

	if in.Has(core.ActionConfirm) {
		events = g.submit(events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// pointer follows the gesture cell and presses on pinch.
func (g *Game) pointer(events []string) []string {
	g.hovering, g.pinched = false, false
	if g.cell == nil {
		return events
	}
	p := g.cell.Pointer()
	if !p.Present {
		return events
	}
	row, col, ok := g.keyboard.At(int(p.X), int(p.Y))
	if !ok {
		return events
	}
	g.hoverRow, g.hoverCol, g.hovering = row, col, true
	if p.Pinch && g.presser.Press(g.tick) {
		g.pinched = true
		events = g.press(Layout[row][col], events)
	}
	return events
}

func (g *Game) press(k Key, events []string) []string {
	switch k.Kind {
	case KeyBackspace:
		g.board.Backspace()
	case KeyEnter:
		return g.submit(events)
	default:
		g.board.Type(k.Letter)
	}
	return events
}

func (g *Game) submit(events []string) []string {
	marks, err := g.board.Submit()
	switch {
	case errors.Is(err, ErrWrongLength):
		g.message = fmt.Sprintf("The word has %d letters!", g.board.Len())
		return events
	case err != nil:
		g.message = err.Error()
		return events
	}

	hits := 0
	for _, m := range marks {
		if m == MarkHit {
			hits++
		}
	}
	events = append(events, fmt.Sprintf("guess %d: %d/%d placed", len(g.board.Rows()), hits, len(marks)))
	switch {
	case g.board.Won():
		g.message = "Well done, you found it!"
		events = append(events, "word found")
	case g.board.Over():
		g.message = "The word was " + g.board.Secret()
		events = append(events, "out of attempts")
	default:
		g.message = fmt.Sprintf("%d attempts left", g.board.Remaining())
	}
	return events
}

// State reports the round: a win scores the spare rows.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Lives:    g.board.Remaining(),
		GameOver: g.board.Over(),
		Paused:   g.paused,
	}
	if g.board.Won() {
		st.Score = (g.board.Remaining() + 1) * PointsPerSpareRow
	}
	return st
}

func init() {
	registry.Register("tusmo", func() registry.Game { return New() })
}
