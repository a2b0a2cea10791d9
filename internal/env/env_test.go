package env

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

func newPong(t *testing.T, opponent bool) *Pong {
	t.Helper()
	cfg := sim.DefaultPong()
	cfg.Opponent = opponent
	e, err := NewPong(cfg, sim.NewRand(3), Options{})
	if err != nil {
		t.Fatalf("NewPong: %v", err)
	}
	return e
}

func TestPongResetObservation(t *testing.T) {
	e := newPong(t, true)
	obs := e.Reset()

	if obs[0] != 0.5 || obs[1] != 0.5 {
		t.Errorf("ball position = (%v, %v), expected centre", obs[0], obs[1])
	}
	if math.Abs(obs[2]) != 1 || math.Abs(obs[3]) != 1 {
		t.Errorf("velocity = (%v, %v), expected unit magnitude", obs[2], obs[3])
	}
	want := float64(720-100) / 2 / 720
	if obs[4] != want || obs[5] != want {
		t.Errorf("paddles = (%v, %v), expected %v", obs[4], obs[5], want)
	}
}

func TestPongBallExitsRightWithoutPaddles(t *testing.T) {
	e := newPong(t, false)
	e.Reset()
	w := e.World()
	w.Player = nil
	w.Ball.X, w.Ball.Y = 640, 360
	w.Ball.DX, w.Ball.DY = 7, 0

	ticks := int(math.Ceil(1280.0 / 2 / 7))
	for i := 1; i <= ticks; i++ {
		_, reward, done, info := e.Step(core.ControlNone)
		if i < ticks {
			if done || reward != 0 {
				t.Fatalf("step %d: done=%v reward=%v", i, done, reward)
			}
			continue
		}
		if !done || reward != RewardWin {
			t.Fatalf("step %d: done=%v reward=%v, expected done with +2", i, done, reward)
		}
		if info.PlayerScore != 1 || info.Step != ticks {
			t.Errorf("info = %+v", info)
		}
	}
}

func TestPongRewards(t *testing.T) {
	tests := []struct {
		name   string
		ball   sim.Ball
		reward float64
		done   bool
	}{
		{"return", sim.Ball{X: 62, Y: 360, DX: -7, DY: 7, Radius: 10}, RewardReturn, false},
		{"loss", sim.Ball{X: 5, Y: 100, DX: -7, DY: 7, Radius: 10}, RewardLoss, true},
		{"nothing", sim.Ball{X: 640, Y: 360, DX: 7, DY: 7, Radius: 10}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newPong(t, false)
			e.Reset()
			e.World().Ball = tc.ball
			_, reward, done, _ := e.Step(core.ControlNone)
			if reward != tc.reward || done != tc.done {
				t.Errorf("reward=%v done=%v, expected %v %v", reward, done, tc.reward, tc.done)
			}
		})
	}
}

func TestInvalidActionIsNoop(t *testing.T) {
	e := newPong(t, false)
	e.Reset()
	y := e.World().Player.Y
	e.Step(core.Control(9))
	if e.World().Player.Y != y {
		t.Errorf("invalid action moved the paddle from %d to %d", y, e.World().Player.Y)
	}
}

func TestBreakoutRewards(t *testing.T) {
	e, err := NewBreakout(sim.DefaultBreakout(), sim.NewRand(5), Options{})
	if err != nil {
		t.Fatal(err)
	}
	obs := e.Reset()
	if obs[5] != 1 {
		t.Errorf("blocks ratio at reset = %v", obs[5])
	}

	w := e.World()
	blk := w.Blocks.At(0)
	for i := range 2 {
		w.Ball = sim.Ball{X: blk.X + blk.W/2, Y: blk.Y + blk.H + 6, DX: 7, DY: -7, Radius: 6}
		_, reward, done, info := e.Step(core.ControlNone)
		want := 0.0
		if i == 1 {
			want = RewardBlock
		}
		if reward != want || done {
			t.Errorf("hit %d: reward=%v done=%v events=%v", i, reward, done, info.Outcome.Events())
		}
	}

	w.Ball = sim.Ball{X: 100, Y: 714, DX: 7, DY: 7, Radius: 6}
	obs, reward, done, info := e.Step(core.ControlNone)
	if reward != RewardLifeLost || !done || info.Lives != 2 {
		t.Errorf("life lost: reward=%v done=%v lives=%d", reward, done, info.Lives)
	}
	if obs[5] >= 1 {
		t.Errorf("blocks ratio after a destroyed block = %v", obs[5])
	}
}

func TestNewChecksMode(t *testing.T) {
	if _, err := NewPong(sim.DefaultBreakout(), sim.NewRand(1), Options{}); err == nil {
		t.Error("NewPong accepted a breakout config")
	}
	e, err := New(sim.DefaultBreakout(), sim.NewRand(1), Options{})
	if err != nil || e.Name() != "breakout" {
		t.Errorf("New() = %v, %v", e, err)
	}
	e, err = New(sim.DefaultPong(), sim.NewRand(1), Options{})
	if err != nil || e.Name() != "pong" {
		t.Errorf("New(pong) = %v, %v", e, err)
	}
	cfg := sim.DefaultPong()
	cfg.Mode = sim.Mode(99)
	if _, err := New(cfg, sim.NewRand(1), Options{}); err == nil {
		t.Error("New accepted an unknown mode")
	}
}
