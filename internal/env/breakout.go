package env

import (
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// Breakout is the Breakout episode environment.
//
// Observation: ball x/W, ball y/H, dx/speed, dy/speed, paddle x/W,
// live blocks / total blocks. Reward: +1 per destroyed block, -2 per
// life lost. Each lost life ends the episode.
type Breakout struct {
	base
}

// NewBreakout builds a Breakout environment. cfg.Mode must be
// sim.ModeBreakout.
func NewBreakout(cfg sim.Config, rng sim.Rand, opts Options) (*Breakout, error) {
	if cfg.Mode != sim.ModeBreakout {
		return nil, fmt.Errorf("env: breakout needs mode breakout, got %v", cfg.Mode)
	}
	w, err := sim.New(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return &Breakout{base{world: w, opts: opts}}, nil
}

// Name returns "breakout".
func (b *Breakout) Name() string { return "breakout" }

// Reset starts a new episode.
func (b *Breakout) Reset() Observation {
	b.reset()
	return Observe(b.world)
}

// Step advances one tick.
func (b *Breakout) Step(action core.Control) (Observation, float64, bool, Info) {
	out := b.step(action)

	var reward float64
	if out.BlockDestroyed {
		reward += RewardBlock
	}
	if out.LifeLost {
		reward += RewardLifeLost
	}
	return Observe(b.world), reward, out.Done(), b.info(out)
}
