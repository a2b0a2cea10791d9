// Package env wraps the simulation in a reset/step episode interface for
// learning agents: fixed-length normalized observations, scalar rewards and
// a done flag that fires when a point or a life ends.
package env

import (
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// ObservationSize is the length of every observation vector.
const ObservationSize = 6

// Observation is a normalized view of the world.
type Observation [ObservationSize]float64

// Info carries diagnostics alongside each step.
type Info struct {
	Step          int
	PlayerScore   int
	OpponentScore int
	Lives         int
	Outcome       sim.Outcome
}

// Env is an episodic environment.
type Env interface {
	// Name identifies the environment, e.g. "pong".
	Name() string
	// Reset starts a new episode and returns its first observation.
	Reset() Observation
	// Step applies action for one tick. Invalid actions act as ControlNone.
	Step(action core.Control) (obs Observation, reward float64, done bool, info Info)
}

// New builds the environment named by cfg.Mode.
func New(cfg sim.Config, rng sim.Rand, opts Options) (Env, error) {
	switch cfg.Mode {
	case sim.ModePong:
		return NewPong(cfg, rng, opts)
	case sim.ModeBreakout:
		return NewBreakout(cfg, rng, opts)
	default:
		return nil, fmt.Errorf("env: unsupported mode %v", cfg.Mode)
	}
}

// Reward values.
const (
	RewardReturn   = 1.0
	RewardWin      = 2.0
	RewardLoss     = -2.0
	RewardBlock    = 1.0
	RewardLifeLost = -2.0
)

// Options configures an environment.
type Options struct {
	// ChaseDeadZone is the opponent bot's tolerance in pixels.
	ChaseDeadZone int
}

type base struct {
	world *sim.World
	opts  Options
	steps int
}

// World exposes the underlying simulation.
func (b *base) World() *sim.World { return b.world }

func (b *base) info(out sim.Outcome) Info {
	return Info{
		Step:          b.steps,
		PlayerScore:   b.world.PlayerScore,
		OpponentScore: b.world.OpponentScore,
		Lives:         b.world.Lives,
		Outcome:       out,
	}
}

func (b *base) reset() {
	b.world.Reset()
	b.steps = 0
}

func (b *base) step(action core.Control) sim.Outcome {
	if !action.Valid() {
		action = core.ControlNone
	}
	b.steps++
	return b.world.Step(sim.Input{
		Player:   action,
		Opponent: b.world.ChaseOpponent(b.opts.ChaseDeadZone),
	})
}
