package core

// Control is the per-tick directive for a paddle: stay, move toward the
// lower coordinate, or move toward the higher one. Keyboards, gesture
// classifiers and scripted policies all reduce to this value.
type Control int8

const (
	ControlNone     Control = 0
	ControlDecrease Control = 1 // left, or up on a vertical axis
	ControlIncrease Control = 2 // right, or down on a vertical axis
)

// String returns a short name for the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "none"
	case ControlDecrease:
		return "decrease"
	case ControlIncrease:
		return "increase"
	default:
		return "invalid"
	}
}

// Valid reports whether c is one of the three defined controls.
func (c Control) Valid() bool {
	return c >= ControlNone && c <= ControlIncrease
}

// Delta returns the signed unit step for the control.
func (c Control) Delta() int {
	switch c {
	case ControlDecrease:
		return -1
	case ControlIncrease:
		return 1
	default:
		return 0
	}
}

// Axis selects which pair of actions drives a paddle.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// ControlFromFrame maps the directional actions of a frame onto a control
// for the given axis. Pressing both directions cancels out.
func ControlFromFrame(f InputFrame, axis Axis) Control {
	dec, inc := ActionLeft, ActionRight
	if axis == AxisVertical {
		dec, inc = ActionUp, ActionDown
	}
	switch {
	case f.Has(dec) && !f.Has(inc):
		return ControlDecrease
	case f.Has(inc) && !f.Has(dec):
		return ControlIncrease
	default:
		return ControlNone
	}
}
