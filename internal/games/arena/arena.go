// Package arena hosts a paddle-and-ball world inside the arcade: it wraps
// a loop.Driver so the terminal host can step it once per frame with
// keyboard input, optionally steered by hand gestures, and draws the
// world scaled down to the terminal grid.
package arena

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/gesture"
	"github.com/vovakirdan/arcade-gym/internal/loop"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// keyHoldTicks keeps a pressed direction active for a few ticks. The
// terminal only reports key presses, and auto-repeat leaves gaps.
const keyHoldTicks = 6

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 30
	MinScreenH = 12
)

var (
	loggerMu sync.RWMutex
	logger   = log.New(io.Discard)
)

// SetLogger routes driver logs from every arena game to l.
func SetLogger(l *log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func currentLogger() *log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Setup is what an arena game needs at the start of every round.
type Setup struct {
	Sim           sim.Config
	ChaseDeadZone int
	// WinScore ends a Pong match when either side reaches it. Zero
	// means the match never ends.
	WinScore int
}

// Loader produces the round setup. It is called on every Reset so config
// edits apply on restart.
type Loader func() (Setup, error)

// Game adapts a simulated world to registry.Game.
type Game struct {
	id    string
	title string
	load  Loader

	runtime core.RuntimeConfig
	setup   Setup
	driver  *loop.Driver
	snap    sim.Snapshot
	err     error

	axis     core.Axis
	held     core.Control
	heldFor  int
	gesture  loop.ControlSource
	tooSmall bool

	over       bool
	finalScore int
	events     []string
}

// New returns an arena game. Reset must be called before Step.
func New(id, title string, load Loader) *Game {
	return &Game{id: id, title: title, load: load}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// AttachGesture steers the player paddle from a gesture cell. Keyboard
// input still wins on ticks where a key is held.
func (g *Game) AttachGesture(cell *gesture.Cell, mode gesture.Mode) {
	g.gesture = gesture.NewControl(cell, mode)
}

// Reset builds a fresh world and driver for the configured mode.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.over, g.finalScore = false, 0
	g.held, g.heldFor = core.ControlNone, 0
	g.driver, g.err = nil, nil

	setup, err := g.load()
	if err != nil {
		g.err = err
		return
	}
	g.setup = setup
	g.axis = core.AxisVertical
	if setup.Sim.Mode == sim.ModeBreakout {
		g.axis = core.AxisHorizontal
	}

	world, err := sim.New(setup.Sim, sim.NewRand(runtime.Seed))
	if err != nil {
		g.err = err
		return
	}
	g.driver, err = loop.New(world, loop.Options{
		TickRate:      runtime.TickRate,
		Player:        loop.ControlFunc(g.sample),
		ChaseDeadZone: setup.ChaseDeadZone,
		Render:        g.capture,
		Logger:        currentLogger().With("game", g.id),
	})
	if err != nil {
		g.err = err
		return
	}
	world.SnapshotInto(&g.snap)
}

// sample merges the held key with the gesture reading.
func (g *Game) sample() core.Control {
	if g.heldFor > 0 {
		return g.held
	}
	if g.gesture != nil {
		return g.gesture.Sample()
	}
	return core.ControlNone
}

func (g *Game) capture(s *sim.Snapshot) {
	blocks := append(g.snap.Blocks[:0], s.Blocks...)
	g.snap = *s
	g.snap.Blocks = blocks
}

// Step feeds one frame of input to the driver and ticks it once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.driver == nil || g.over || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.driver.TogglePause()
	}

	if c := core.ControlFromFrame(in, g.axis); c != core.ControlNone {
		g.held, g.heldFor = c, keyHoldTicks
	} else if g.heldFor > 0 {
		g.heldFor--
	}

	out, stepped := g.driver.Tick()
	if stepped {
		g.events = append(g.events, out.Events()...)
		g.judge(out)
	}
	return core.StepResult{State: g.State(), Events: g.events}
}

// judge decides whether the round ended on this tick.
func (g *Game) judge(out sim.Outcome) {
	if out.GameOver {
		g.over, g.finalScore = true, out.FinalScore
		g.driver.Pause()
		return
	}
	if w := g.setup.WinScore; w > 0 && out.Scored != sim.SideNone {
		if g.snap.PlayerScore >= w || g.snap.OpponentScore >= w {
			g.over, g.finalScore = true, g.snap.PlayerScore
			g.driver.Pause()
		}
	}
}

// State reports score, lives and pause state to the host.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.snap.PlayerScore,
		Lives:    g.snap.Lives,
		GameOver: g.over,
	}
	if g.over {
		st.Score = g.finalScore
	}
	if g.driver != nil && !g.over {
		st.Paused = g.driver.State() == loop.StatePaused
	}
	return st
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error { return g.err }

// Snapshot returns the last rendered world state.
func (g *Game) Snapshot() sim.Snapshot { return g.snap }
