// Package agent holds scripted policies that play the episode
// environments, and an evaluation runner that scores them.
package agent

import (
	"math/rand"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/env"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// Policy chooses a control from an observation.
type Policy interface {
	Act(obs env.Observation) core.Control
}

// Chase follows the ball with the paddle centre, like the Pong bot.
type Chase struct {
	target int     // observation index of the ball coordinate to follow
	half   float64 // half the paddle length, normalized
	dead   float64 // dead zone, normalized
}

// NewChase builds a chase policy for the layout in cfg. deadZone is in
// playfield pixels.
func NewChase(cfg sim.Config, deadZone int) *Chase {
	if cfg.Mode == sim.ModePong {
		return &Chase{
			target: 1,
			half:   float64(cfg.PaddleH) / 2 / float64(cfg.Height),
			dead:   float64(deadZone) / float64(cfg.Height),
		}
	}
	return &Chase{
		target: 0,
		half:   float64(cfg.PaddleW) / 2 / float64(cfg.Width),
		dead:   float64(deadZone) / float64(cfg.Width),
	}
}

// Act moves toward the ball.
func (c *Chase) Act(obs env.Observation) core.Control {
	center := obs[4] + c.half
	switch target := obs[c.target]; {
	case target > center+c.dead:
		return core.ControlIncrease
	case target < center-c.dead:
		return core.ControlDecrease
	default:
		return core.ControlNone
	}
}

// Random picks uniformly among the three controls.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random policy with its own seeded source.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Act returns a random control.
func (r *Random) Act(env.Observation) core.Control {
	return core.Control(r.rng.Intn(3))
}

// Source adapts a policy into a per-tick control source for a live world.
type Source struct {
	policy Policy
	world  *sim.World
}

// NewSource returns a control source that observes world and asks policy.
func NewSource(policy Policy, world *sim.World) *Source {
	return &Source{policy: policy, world: world}
}

// Sample observes the world and returns the policy's control.
func (s *Source) Sample() core.Control {
	return s.policy.Act(env.Observe(s.world))
}
