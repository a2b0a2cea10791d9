package env

import (
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// Pong is the Pong episode environment. The agent controls the left
// paddle against the chase bot.
//
// Observation: ball x/W, ball y/H, dx/speed, dy/speed, player y/H,
// opponent y/H. Reward: +1 for each return, +2 when the agent scores,
// -2 when the bot scores.
type Pong struct {
	base
}

// NewPong builds a Pong environment. cfg.Mode must be sim.ModePong.
func NewPong(cfg sim.Config, rng sim.Rand, opts Options) (*Pong, error) {
	if cfg.Mode != sim.ModePong {
		return nil, fmt.Errorf("env: pong needs mode pong, got %v", cfg.Mode)
	}
	w, err := sim.New(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return &Pong{base{world: w, opts: opts}}, nil
}

// Name returns "pong".
func (p *Pong) Name() string { return "pong" }

// Reset starts a new episode.
func (p *Pong) Reset() Observation {
	p.reset()
	return Observe(p.world)
}

// Step advances one tick.
func (p *Pong) Step(action core.Control) (Observation, float64, bool, Info) {
	out := p.step(action)

	var reward float64
	if out.PaddleHit == sim.SidePlayer {
		reward += RewardReturn
	}
	switch out.Scored {
	case sim.SidePlayer:
		reward += RewardWin
	case sim.SideOpponent:
		reward += RewardLoss
	}
	return Observe(p.world), reward, out.Done(), p.info(out)
}

