// Package sim is the deterministic ball-and-paddle simulation behind both
// Breakout and Pong. A World advances one tick at a time from a pair of
// control signals; the only randomness is the serve direction, drawn from an
// injected Rand.
//
// Collision convention: the ball is its bounding square and every contact
// test uses closed intervals, so touching an edge counts as a hit. Walls and
// paddles only reflect a ball that is moving into them; blocks always do.
package sim

import (
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/core"
)

// Side identifies who a point or paddle return belongs to.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Input carries the control signals for one tick.
type Input struct {
	Player   core.Control
	Opponent core.Control
}

// Outcome reports what happened during one Step.
type Outcome struct {
	WallBounce     bool
	PaddleHit      Side // which paddle returned the ball, if any
	BlockHit       bool
	BlockDestroyed bool
	LifeLost       bool
	Scored         Side // Pong: who won the point
	GridCleared    bool
	// GameOver is set when the last life was lost and the world was reset.
	// FinalScore is the score that game ended with.
	GameOver   bool
	FinalScore int
}

// Done reports whether a point or a life ended on this tick.
func (o Outcome) Done() bool {
	return o.LifeLost || o.Scored != SideNone
}

// Events lists the notable parts of the outcome as short strings.
func (o Outcome) Events() []string {
	var ev []string
	if o.PaddleHit != SideNone {
		ev = append(ev, o.PaddleHit.String()+" return")
	}
	if o.BlockDestroyed {
		ev = append(ev, "block destroyed")
	} else if o.BlockHit {
		ev = append(ev, "block hit")
	}
	if o.GridCleared {
		ev = append(ev, "grid cleared")
	}
	if o.LifeLost {
		ev = append(ev, "life lost")
	}
	if o.Scored != SideNone {
		ev = append(ev, o.Scored.String()+" scored")
	}
	if o.GameOver {
		ev = append(ev, fmt.Sprintf("game over (%d)", o.FinalScore))
	}
	return ev
}

// World is the full simulation state. Player and Opponent may be nil, in
// which case that paddle takes no part in the game.
type World struct {
	Ball     Ball
	Player   *Paddle
	Opponent *Paddle
	Blocks   *BlockGrid

	PlayerScore   int
	OpponentScore int
	Lives         int

	cfg  Config
	rng  Rand
	tick uint64
}

// New validates cfg and returns a world that has already been reset.
func New(cfg Config, rng Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	w := &World{cfg: cfg, rng: rng}
	w.Reset()
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of steps since the last full reset.
func (w *World) Tick() uint64 { return w.tick }

// Reset rebuilds every entity: paddles to their home positions, a fresh
// block grid, full lives, zero scores and a newly served ball.
func (w *World) Reset() {
	c := w.cfg
	w.tick = 0
	w.PlayerScore, w.OpponentScore = 0, 0
	w.Ball = Ball{Radius: c.BallRadius}

	switch c.Mode {
	case ModeBreakout:
		w.Player = &Paddle{
			X: (c.Width - c.PaddleW) / 2, Y: c.Height - c.PaddleMargin,
			W: c.PaddleW, H: c.PaddleH, Speed: c.PaddleSpeed,
			Axis: core.AxisHorizontal,
		}
		w.Opponent = nil
		w.Blocks = NewBlockGrid(c)
		w.Lives = c.Lives
	case ModePong:
		y := (c.Height - c.PaddleH) / 2
		w.Player = &Paddle{
			X: c.PaddleMargin, Y: y,
			W: c.PaddleW, H: c.PaddleH, Speed: c.PaddleSpeed,
			Axis: core.AxisVertical,
		}
		w.Opponent = nil
		if c.Opponent {
			w.Opponent = &Paddle{
				X: c.Width - c.PaddleW - c.PaddleMargin, Y: y,
				W: c.PaddleW, H: c.PaddleH, Speed: c.PaddleSpeed,
				Axis: core.AxisVertical,
			}
		}
		w.Blocks = nil
		w.Lives = 0
	}
	w.ResetBall()
}

// ResetBall serves the ball from the serve point with each velocity
// component drawn uniformly from {-speed, +speed}. Paddles and scores are
// left alone.
func (w *World) ResetBall() {
	w.Ball.X = w.cfg.Width / 2
	w.Ball.Y = w.cfg.Height/2 + w.cfg.ServeOffsetY
	w.Ball.DX = w.randomSign(w.cfg.BallSpeed)
	w.Ball.DY = w.randomSign(w.cfg.BallSpeed)
}

func (w *World) randomSign(speed int) int {
	if w.rng.Intn(2) == 0 {
		return -speed
	}
	return speed
}

// Step advances the world by one tick. The phases always run in this order:
// paddle control, wall reflection, a single paddle or block contact,
// integration, then the out-of-bounds check.
func (w *World) Step(in Input) Outcome {
	var out Outcome
	w.tick++

	w.applyControls(in)
	w.reflectWalls(&out)
	w.resolveContact(&out)
	w.Ball.Move()
	w.checkBounds(&out)

	return out
}

func (w *World) applyControls(in Input) {
	extent := w.cfg.Width
	if w.cfg.Mode == ModePong {
		extent = w.cfg.Height
	}
	if w.Player != nil {
		w.Player.Apply(in.Player, extent)
	}
	if w.Opponent != nil {
		w.Opponent.Apply(in.Opponent, extent)
	}
}

func (w *World) reflectWalls(out *Outcome) {
	b := &w.Ball
	top := b.Y-b.Radius <= 0 && b.DY < 0

	if w.cfg.Mode == ModePong {
		bottom := b.Y+b.Radius >= w.cfg.Height && b.DY > 0
		if top || bottom {
			b.BounceY()
			out.WallBounce = true
		}
		return
	}

	left := b.X-b.Radius <= 0 && b.DX < 0
	right := b.X+b.Radius >= w.cfg.Width && b.DX > 0
	if left || right {
		b.BounceX()
		out.WallBounce = true
	}
	if top {
		b.BounceY()
		out.WallBounce = true
	}
}

// resolveContact handles at most one paddle or block per tick.
func (w *World) resolveContact(out *Outcome) {
	b := &w.Ball

	if w.cfg.Mode == ModePong {
		switch {
		case w.Player != nil && b.DX < 0 && b.Touches(w.Player.Rect()):
			b.BounceX()
			out.PaddleHit = SidePlayer
		case w.Opponent != nil && b.DX > 0 && b.Touches(w.Opponent.Rect()):
			b.BounceX()
			out.PaddleHit = SideOpponent
		}
		return
	}

	if w.Player != nil && b.DY > 0 && b.Touches(w.Player.Rect()) {
		b.BounceY()
		out.PaddleHit = SidePlayer
		return
	}

	if w.Blocks == nil {
		return
	}
	if i := w.Blocks.FirstTouched(*b); i >= 0 {
		b.BounceY()
		out.BlockHit = true
		if w.Blocks.Hit(i) {
			out.BlockDestroyed = true
			w.PlayerScore += w.cfg.BlockPoints
		}
	}
}

func (w *World) checkBounds(out *Outcome) {
	b := &w.Ball

	if w.cfg.Mode == ModePong {
		switch {
		case b.X <= 0:
			w.OpponentScore++
			out.Scored = SideOpponent
		case b.X >= w.cfg.Width:
			w.PlayerScore++
			out.Scored = SidePlayer
		default:
			return
		}
		w.ResetBall()
		return
	}

	if b.Y+b.Radius > w.cfg.Height {
		out.LifeLost = true
		w.Lives--
		if w.Lives < 1 {
			out.GameOver = true
			out.FinalScore = w.PlayerScore
			w.Reset()
			return
		}
		w.ResetBall()
		return
	}

	if w.Blocks != nil && w.Blocks.Total() > 0 && w.Blocks.Len() == 0 {
		out.GridCleared = true
		w.Blocks = NewBlockGrid(w.cfg)
		w.ResetBall()
	}
}

// ChaseOpponent returns the control that moves the opponent paddle toward
// the ball, or ControlNone when there is no opponent.
func (w *World) ChaseOpponent(deadZone int) core.Control {
	if w.Opponent == nil {
		return core.ControlNone
	}
	return Chase(w.Opponent.Center(), w.Ball.Y, deadZone)
}

// Chase is the bot heuristic: step toward target when it lies further than
// deadZone from the paddle centre.
func Chase(center, target, deadZone int) core.Control {
	d := target - center
	if core.Abs(d) <= deadZone {
		return core.ControlNone
	}
	if core.Sign(d) > 0 {
		return core.ControlIncrease
	}
	return core.ControlDecrease
}
