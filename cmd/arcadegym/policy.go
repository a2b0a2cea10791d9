package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/arcade-gym/internal/agent"
	"github.com/vovakirdan/arcade-gym/internal/games/arena"
	"github.com/vovakirdan/arcade-gym/internal/games/breakout"
	"github.com/vovakirdan/arcade-gym/internal/games/pong"
)

// Policy names accepted by --policy. Lua scripts are given as lua:<path>.
const (
	policyChase   = "chase"
	policyRandom  = "random"
	policyGesture = "gesture"
	policyLuaPfx  = "lua:"
)

// loadSetup resolves the simulation settings for a paddle game.
func loadSetup(gameID string) (arena.Setup, error) {
	switch gameID {
	case "breakout":
		return breakout.Load()
	case "pong":
		return pong.Load()
	default:
		return arena.Setup{}, fmt.Errorf("game %q has no headless simulation (use breakout or pong)", gameID)
	}
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// buildPolicy parses a --policy value. The returned close func releases
// script resources and is never nil.
func buildPolicy(name string, setup arena.Setup, seed int64) (agent.Policy, func(), error) {
	noop := func() {}
	switch {
	case name == policyChase:
		return agent.NewChase(setup.Sim, setup.ChaseDeadZone), noop, nil
	case name == policyRandom:
		return agent.NewRandom(seed), noop, nil
	case strings.HasPrefix(name, policyLuaPfx):
		path := strings.TrimPrefix(name, policyLuaPfx)
		p, err := agent.LoadLua(path, app.logger.WithPrefix("lua"))
		if err != nil {
			return nil, noop, err
		}
		return p, func() {
			if n := p.Errors(); n > 0 {
				app.logger.Warn("lua policy reported errors", "count", n)
			}
			p.Close()
		}, nil
	default:
		return nil, noop, fmt.Errorf("unknown policy %q (want chase, random or lua:<path>)", name)
	}
}
