package sim

import (
	"errors"
	"fmt"
)

// Mode selects which rule set a World plays by.
type Mode int

const (
	ModeBreakout Mode = iota
	ModePong
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBreakout:
		return "breakout"
	case ModePong:
		return "pong"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Config describes a playfield and its entities. All distances are in
// playfield pixels and all speeds in pixels per tick.
type Config struct {
	Mode Mode

	Width  int
	Height int

	BallRadius int
	BallSpeed  int // per-axis magnitude, never changes during play
	// ServeOffsetY shifts the serve point vertically from the field centre.
	ServeOffsetY int

	PaddleW     int
	PaddleH     int
	PaddleSpeed int
	// PaddleMargin is the gap between a paddle and the edge it guards:
	// the bottom edge in Breakout, the side edges in Pong.
	PaddleMargin int

	// Breakout only.
	Lives        int
	BlockRows    int
	BlockW       int
	BlockH       int
	BlockLife    int
	BlockOriginX int
	BlockOriginY int
	BlockPitchX  int
	BlockPitchY  int
	BlockPoints  int

	// Pong only. When false the opponent paddle is absent.
	Opponent bool
}

// DefaultBreakout returns the classic 1280x720 Breakout layout.
func DefaultBreakout() Config {
	return Config{
		Mode:         ModeBreakout,
		Width:        1280,
		Height:       720,
		BallRadius:   6,
		BallSpeed:    7,
		ServeOffsetY: -10,
		PaddleW:      112,
		PaddleH:      18,
		PaddleSpeed:  10,
		PaddleMargin: 30,
		Lives:        3,
		BlockRows:    3,
		BlockW:       61,
		BlockH:       20,
		BlockLife:    2,
		BlockOriginX: 15,
		BlockOriginY: 5,
		BlockPitchX:  64,
		BlockPitchY:  21,
		BlockPoints:  10,
	}
}

// DefaultPong returns the classic 1280x720 Pong layout with a bot opponent.
func DefaultPong() Config {
	return Config{
		Mode:         ModePong,
		Width:        1280,
		Height:       720,
		BallRadius:   10,
		BallSpeed:    7,
		PaddleW:      10,
		PaddleH:      100,
		PaddleSpeed:  10,
		PaddleMargin: 50,
		Opponent:     true,
	}
}

// Columns returns the number of block columns the grid lays out.
func (c Config) Columns() int {
	if c.BlockW <= 0 {
		return 0
	}
	return c.Width/c.BlockW - 1
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("sim: invalid config")

// Validate checks that the entities fit the playfield.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Mode != ModeBreakout && c.Mode != ModePong:
		return invalid("unknown mode %d", int(c.Mode))
	case c.Width <= 0 || c.Height <= 0:
		return invalid("playfield %dx%d must be positive", c.Width, c.Height)
	case c.BallRadius <= 0 || 2*c.BallRadius >= min(c.Width, c.Height):
		return invalid("ball radius %d does not fit the playfield", c.BallRadius)
	case c.BallSpeed <= 0:
		return invalid("ball speed %d must be positive", c.BallSpeed)
	case c.PaddleW <= 0 || c.PaddleH <= 0 || c.PaddleSpeed < 0:
		return invalid("paddle %dx%d speed %d", c.PaddleW, c.PaddleH, c.PaddleSpeed)
	}

	if c.Mode == ModePong {
		if c.PaddleH > c.Height {
			return invalid("paddle height %d exceeds playfield height %d", c.PaddleH, c.Height)
		}
		if 2*(c.PaddleMargin+c.PaddleW) >= c.Width {
			return invalid("paddles at margin %d overlap", c.PaddleMargin)
		}
		return nil
	}

	switch {
	case c.PaddleW > c.Width:
		return invalid("paddle width %d exceeds playfield width %d", c.PaddleW, c.Width)
	case c.PaddleMargin < c.PaddleH || c.PaddleMargin >= c.Height:
		return invalid("paddle margin %d must be within [%d, %d)", c.PaddleMargin, c.PaddleH, c.Height)
	case c.Lives < 1:
		return invalid("lives %d must be at least 1", c.Lives)
	case c.BlockRows < 0:
		return invalid("block rows %d", c.BlockRows)
	case c.BlockRows > 0 && (c.BlockW <= 0 || c.BlockH <= 0 || c.BlockLife < 1):
		return invalid("blocks %dx%d life %d", c.BlockW, c.BlockH, c.BlockLife)
	case c.BlockRows > 0 && (c.BlockPitchX < c.BlockW || c.BlockPitchY < c.BlockH):
		return invalid("block pitch %dx%d smaller than block %dx%d", c.BlockPitchX, c.BlockPitchY, c.BlockW, c.BlockH)
	}
	return nil
}
