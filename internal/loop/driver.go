// Package loop drives a sim.World at a fixed tick rate. Each tick samples
// the control sources, steps the world once and hands a snapshot to the
// render callback; the driver then waits for the next tick.
package loop

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// State is the driver's lifecycle state.
type State int32

const (
	StateRunning State = iota
	StatePaused
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// DefaultTickRate is the tick cap used when Options.TickRate is zero.
const DefaultTickRate = 60

// ControlSource produces one control signal per tick. Implementations must
// not block.
type ControlSource interface {
	Sample() core.Control
}

// ControlFunc adapts a function to ControlSource.
type ControlFunc func() core.Control

// Sample calls f.
func (f ControlFunc) Sample() core.Control { return f() }

// RenderFunc receives the world state after every tick. The snapshot's
// block slice is reused on the next tick; copy it to keep it.
type RenderFunc func(snap *sim.Snapshot)

// OutcomeFunc receives the result of every step.
type OutcomeFunc func(tick uint64, out sim.Outcome)

// Options configures a Driver.
type Options struct {
	TickRate int
	// MaxTicks stops Run after that many steps. Zero means no limit.
	MaxTicks uint64
	Player   ControlSource
	// Opponent drives the second paddle. Nil means the chase bot.
	Opponent      ControlSource
	ChaseDeadZone int
	Render        RenderFunc
	OnOutcome     OutcomeFunc
	Logger        *log.Logger
}

// ErrNilWorld is returned by New when no world is given.
var ErrNilWorld = errors.New("loop: nil world")

// Driver owns a world and advances it one tick at a time. Tick and Run
// belong to one goroutine; Pause, Resume and Quit are safe from any.
type Driver struct {
	world    *sim.World
	opts     Options
	interval time.Duration
	logger   *log.Logger

	state atomic.Int32
	steps atomic.Uint64
	snap  sim.Snapshot
}

// New creates a running driver for world.
func New(world *sim.World, opts Options) (*Driver, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Player == nil {
		opts.Player = ControlFunc(func() core.Control { return core.ControlNone })
	}
	if opts.Opponent == nil {
		dz := opts.ChaseDeadZone
		opts.Opponent = ControlFunc(func() core.Control { return world.ChaseOpponent(dz) })
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Driver{
		world:    world,
		opts:     opts,
		interval: time.Second / time.Duration(opts.TickRate),
		logger:   logger,
	}, nil
}

// World returns the driven world.
func (d *Driver) World() *sim.World { return d.world }

// Interval returns the target time between ticks.
func (d *Driver) Interval() time.Duration { return d.interval }

// Steps returns how many times the world has been stepped.
func (d *Driver) Steps() uint64 { return d.steps.Load() }

// State returns the current lifecycle state.
func (d *Driver) State() State { return State(d.state.Load()) }

// Pause stops stepping the world; rendering continues.
func (d *Driver) Pause() bool {
	return d.state.CompareAndSwap(int32(StateRunning), int32(StatePaused))
}

// Resume continues a paused driver.
func (d *Driver) Resume() bool {
	return d.state.CompareAndSwap(int32(StatePaused), int32(StateRunning))
}

// TogglePause flips between running and paused.
func (d *Driver) TogglePause() {
	if !d.Pause() {
		d.Resume()
	}
}

// Quit terminates the driver. It cannot be resumed afterwards.
func (d *Driver) Quit() {
	if State(d.state.Swap(int32(StateTerminated))) != StateTerminated {
		d.logger.Debug("driver terminated", "steps", d.steps.Load())
	}
}

// Reset starts a new episode: the world is fully reset and a paused
// driver resumes.
func (d *Driver) Reset() {
	if d.State() == StateTerminated {
		return
	}
	d.world.Reset()
	d.Resume()
	d.render()
}

// Tick runs one tick: sample the control sources, step the world and
// render. A paused driver only renders; a terminated one does nothing.
// The boolean reports whether the world was stepped.
func (d *Driver) Tick() (sim.Outcome, bool) {
	switch d.State() {
	case StateTerminated:
		return sim.Outcome{}, false
	case StatePaused:
		d.render()
		return sim.Outcome{}, false
	}

	in := sim.Input{
		Player:   d.opts.Player.Sample(),
		Opponent: d.opts.Opponent.Sample(),
	}
	out := d.world.Step(in)
	steps := d.steps.Add(1)

	if d.opts.OnOutcome != nil {
		d.opts.OnOutcome(steps, out)
	}
	if out.Done() {
		d.logger.Debug("episode boundary",
			"step", steps,
			"events", out.Events(),
			"player", d.world.PlayerScore,
			"opponent", d.world.OpponentScore,
			"lives", d.world.Lives,
		)
	}
	d.render()

	if d.opts.MaxTicks > 0 && steps >= d.opts.MaxTicks {
		d.Quit()
	}
	return out, true
}

func (d *Driver) render() {
	if d.opts.Render == nil {
		return
	}
	d.world.SnapshotInto(&d.snap)
	d.opts.Render(&d.snap)
}

// Run ticks at the configured rate until Quit is called or ctx is done.
// It returns nil after Quit and ctx.Err() after cancellation; in both
// cases the driver ends terminated.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("loop started", "tick_rate", d.opts.TickRate, "mode", d.world.Config().Mode)
	for {
		if d.State() == StateTerminated {
			d.logger.Info("loop stopped", "steps", d.steps.Load())
			return nil
		}
		d.Tick()

		select {
		case <-ctx.Done():
			d.Quit()
			d.logger.Info("loop cancelled", "steps", d.steps.Load())
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
