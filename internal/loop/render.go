package loop

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// LogRenderer returns a render callback that logs a compact view of the
// world every n ticks at debug level.
func LogRenderer(logger *log.Logger, every uint64) RenderFunc {
	if every == 0 {
		every = 1
	}
	return func(s *sim.Snapshot) {
		if s.Tick%every != 0 {
			return
		}
		kv := []any{
			"tick", s.Tick,
			"ball", [2]int{s.Ball.X, s.Ball.Y},
			"vel", [2]int{s.Ball.DX, s.Ball.DY},
		}
		switch s.Mode {
		case sim.ModeBreakout:
			kv = append(kv, "paddle", s.Player.X, "score", s.PlayerScore,
				"lives", s.Lives, "blocks", len(s.Blocks))
		case sim.ModePong:
			kv = append(kv, "paddle", s.Player.Y, "score", [2]int{s.PlayerScore, s.OpponentScore})
		}
		logger.Debug("frame", kv...)
	}
}

// Renderers fans one snapshot out to several callbacks in order.
func Renderers(fns ...RenderFunc) RenderFunc {
	return func(s *sim.Snapshot) {
		for _, fn := range fns {
			if fn != nil {
				fn(s)
			}
		}
	}
}
