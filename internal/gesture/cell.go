package gesture

import (
	"sync/atomic"

	"github.com/vovakirdan/arcade-gym/internal/core"
)

// Pointer is the index fingertip as a screen pointer.
type Pointer struct {
	X, Y    float64 // image pixels
	Pinch   bool
	Present bool // false when no hand was seen in the last frame
}

// Reading is one classified frame.
type Reading struct {
	Move    Direction
	Thumb   Thumb
	Pointer Pointer
}

// Cell holds the latest published reading. One goroutine publishes, any
// number read; readers always see the last complete value and never block.
type Cell struct {
	last   atomic.Pointer[Reading]
	frames atomic.Uint64
}

// Publish replaces the current reading.
func (c *Cell) Publish(move Direction, thumb Thumb, p Pointer) {
	c.last.Store(&Reading{Move: move, Thumb: thumb, Pointer: p})
	c.frames.Add(1)
}

// Load returns the last published reading, or the zero reading before
// the first Publish.
func (c *Cell) Load() Reading {
	if r := c.last.Load(); r != nil {
		return *r
	}
	return Reading{}
}

// Move returns the last published hand movement.
func (c *Cell) Move() Direction { return c.Load().Move }

// Thumb returns the last published thumb orientation.
func (c *Cell) Thumb() Thumb { return c.Load().Thumb }

// Pointer returns the last published pointer.
func (c *Cell) Pointer() Pointer { return c.Load().Pointer }

// Frames returns how many readings have been published.
func (c *Cell) Frames() uint64 { return c.frames.Load() }

// Mode selects which reading drives the paddle.
type Mode string

const (
	ModeTranslation Mode = "translation" // hand movement, for horizontal paddles
	ModeThumb       Mode = "thumb"       // thumb up/down, for vertical paddles
)

// Control samples a Cell as a paddle control source.
type Control struct {
	cell *Cell
	mode Mode
}

// NewControl returns a control source reading cell in the given mode.
func NewControl(cell *Cell, mode Mode) *Control {
	return &Control{cell: cell, mode: mode}
}

// Sample returns the control implied by the latest reading.
func (c *Control) Sample() core.Control {
	if c.mode == ModeThumb {
		switch c.cell.Thumb() {
		case ThumbUp:
			return core.ControlDecrease
		case ThumbDown:
			return core.ControlIncrease
		}
		return core.ControlNone
	}
	switch c.cell.Move() {
	case DirectionLeft:
		return core.ControlDecrease
	case DirectionRight:
		return core.ControlIncrease
	}
	return core.ControlNone
}
