package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/env"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

func TestChaseFollowsBall(t *testing.T) {
	pong := NewChase(sim.DefaultPong(), 0)
	tolerant := NewChase(sim.DefaultPong(), 10)
	breakout := NewChase(sim.DefaultBreakout(), 0)

	tests := []struct {
		name   string
		policy *Chase
		obs    env.Observation
		want   core.Control
	}{
		// Pong paddle top at 0.4, centre at 0.4 + 50/720.
		{"pong ball above", pong, env.Observation{0.5, 0.1, 1, 1, 0.4, 0}, core.ControlDecrease},
		{"pong ball below", pong, env.Observation{0.5, 0.9, 1, 1, 0.4, 0}, core.ControlIncrease},
		{"pong ball level", tolerant, env.Observation{0.5, 0.4 + 50.0/720, 1, 1, 0.4, 0}, core.ControlNone},
		{"breakout ball left", breakout, env.Observation{0.1, 0.5, 1, 1, 0.5, 1}, core.ControlDecrease},
		{"breakout ball right", breakout, env.Observation{0.9, 0.5, 1, 1, 0.5, 1}, core.ControlIncrease},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.policy.Act(tc.obs); got != tc.want {
				t.Errorf("Act() = %v, expected %v", got, tc.want)
			}
		})
	}
}

const followScript = `
function act(obs)
  if obs.ball_y < obs[5] then
    return DECREASE
  end
  return INCREASE
end
`

func TestLuaPolicy(t *testing.T) {
	p, err := NewLua(followScript, nil)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer p.Close()

	if got := p.Act(env.Observation{0, 0.1, 0, 0, 0.5, 0}); got != core.ControlDecrease {
		t.Errorf("ball above paddle: %v", got)
	}
	if got := p.Act(env.Observation{0, 0.9, 0, 0, 0.5, 0}); got != core.ControlIncrease {
		t.Errorf("ball below paddle: %v", got)
	}
	if p.Errors() != 0 {
		t.Errorf("Errors() = %d", p.Errors())
	}
}

func TestLuaPolicyFailures(t *testing.T) {
	if _, err := NewLua(`x = 1`, nil); !errors.Is(err, ErrNoActFunction) {
		t.Errorf("script without act: %v", err)
	}
	if _, err := NewLua(`function act(`, nil); err == nil {
		t.Error("syntax error was accepted")
	}

	tests := []struct {
		name   string
		script string
	}{
		{"runtime error", `function act(obs) error("boom") end`},
		{"out of range", `function act(obs) return 7 end`},
		{"not a number", `function act(obs) return "left" end`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewLua(tc.script, nil)
			if err != nil {
				t.Fatal(err)
			}
			defer p.Close()
			if got := p.Act(env.Observation{}); got != core.ControlNone {
				t.Errorf("Act() = %v, expected none", got)
			}
			if p.Errors() != 1 {
				t.Errorf("Errors() = %d, expected 1", p.Errors())
			}
		})
	}
}

func TestLoadLuaFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.lua")
	if err := os.WriteFile(path, []byte(`function act(obs) return NONE end`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadLua(path, nil)
	if err != nil {
		t.Fatalf("LoadLua: %v", err)
	}
	defer p.Close()
	if got := p.Act(env.Observation{}); got != core.ControlNone {
		t.Errorf("Act() = %v", got)
	}

	if _, err := LoadLua(filepath.Join(t.TempDir(), "missing.lua"), nil); err == nil {
		t.Error("missing script was accepted")
	}
}

func newPongEnv(t *testing.T, seed int64) *env.Pong {
	t.Helper()
	e, err := env.NewPong(sim.DefaultPong(), sim.NewRand(seed), env.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEvaluate(t *testing.T) {
	policy := NewChase(sim.DefaultPong(), 0)

	first, err := Evaluate(context.Background(), newPongEnv(t, 11), policy, 3, 2000)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("got %d results", len(first))
	}
	for _, r := range first {
		if r.Steps == 0 || r.Steps > 2000 {
			t.Errorf("episode %d ran %d steps", r.Episode, r.Steps)
		}
		if r.Truncated != (r.Steps == 2000) {
			t.Errorf("episode %d truncated=%v at %d steps", r.Episode, r.Truncated, r.Steps)
		}
	}

	second, err := Evaluate(context.Background(), newPongEnv(t, 11), policy, 3, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("evaluation is not reproducible with the same seed")
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Evaluate(ctx, newPongEnv(t, 1), NewRandom(1), 2, 0)
	if !errors.Is(err, context.Canceled) || len(res) != 0 {
		t.Errorf("Evaluate() = %v, %v", res, err)
	}
	if _, err := Evaluate(context.Background(), newPongEnv(t, 1), NewRandom(1), 0, 0); !errors.Is(err, ErrNoEpisodes) {
		t.Errorf("zero episodes: %v", err)
	}
}

func TestMeanReward(t *testing.T) {
	got := MeanReward([]EpisodeResult{{Reward: 2}, {Reward: -2}, {Reward: 3}})
	if got != 1 {
		t.Errorf("MeanReward() = %v", got)
	}
	if MeanReward(nil) != 0 {
		t.Error("MeanReward(nil) should be 0")
	}
}

func TestSourceSamplesPolicy(t *testing.T) {
	w, err := sim.New(sim.DefaultPong(), sim.NewRand(2))
	if err != nil {
		t.Fatal(err)
	}
	w.Ball.Y = 10
	src := NewSource(NewChase(w.Config(), 0), w)
	if got := src.Sample(); got != core.ControlDecrease {
		t.Errorf("Sample() = %v", got)
	}
}
