package env

import "github.com/vovakirdan/arcade-gym/internal/sim"

// Observe builds the observation vector for w. The first four entries are
// the ball position over the field size and its velocity over the ball
// speed. Pong adds both paddle tops over the height; Breakout adds the
// paddle's left edge over the width and the fraction of blocks left.
func Observe(w *sim.World) Observation {
	var obs Observation
	c := w.Config()
	obs[0] = ratio(w.Ball.X, c.Width)
	obs[1] = ratio(w.Ball.Y, c.Height)
	obs[2] = ratio(w.Ball.DX, c.BallSpeed)
	obs[3] = ratio(w.Ball.DY, c.BallSpeed)

	switch c.Mode {
	case sim.ModePong:
		if w.Player != nil {
			obs[4] = ratio(w.Player.Y, c.Height)
		}
		if w.Opponent != nil {
			obs[5] = ratio(w.Opponent.Y, c.Height)
		}
	case sim.ModeBreakout:
		if w.Player != nil {
			obs[4] = ratio(w.Player.X, c.Width)
		}
		if w.Blocks != nil {
			obs[5] = ratio(w.Blocks.Len(), w.Blocks.Total())
		}
	}
	return obs
}

func ratio(v, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(v) / float64(of)
}
