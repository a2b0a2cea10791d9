package gesture

import "math"

// Direction is the horizontal movement of a hand between two frames.
type Direction int32

const (
	DirectionImmobile Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "immobile"
	}
}

// Thumb is the orientation of the thumb relative to the wrist.
type Thumb int32

const (
	ThumbNeutral Thumb = iota
	ThumbUp
	ThumbDown
)

// String returns the thumb orientation name.
func (t Thumb) String() string {
	switch t {
	case ThumbUp:
		return "up"
	case ThumbDown:
		return "down"
	default:
		return "neutral"
	}
}

// Thumb angle limits in degrees from straight up.
const (
	ThumbUpMaxAngle   = 60.0
	ThumbDownMinAngle = 110.0
)

// ClassifyThumb measures the angle between wrist->thumb tip and the image's
// up vector (negative y). Under 60 degrees is up, over 110 is down.
func ClassifyThumb(thumbTip, wrist Point) Thumb {
	v := thumbTip.Sub(wrist)
	norm := math.Hypot(v.X, v.Y)
	if norm == 0 {
		return ThumbNeutral
	}
	cos := max(-1, min(1, -v.Y/norm))
	angle := math.Acos(cos) * 180 / math.Pi

	switch {
	case angle < ThumbUpMaxAngle:
		return ThumbUp
	case angle > ThumbDownMinAngle:
		return ThumbDown
	default:
		return ThumbNeutral
	}
}

// Translation classifies horizontal hand movement from successive x
// samples. Camera images are usually mirrored, so by default a decreasing
// x reads as a move to the right.
type Translation struct {
	Threshold float64
	Mirror    bool

	prev    float64
	hasPrev bool
}

// NewTranslation returns a classifier with the given threshold in pixels.
func NewTranslation(threshold float64, mirror bool) *Translation {
	return &Translation{Threshold: threshold, Mirror: mirror}
}

// Classify compares x to the previous sample and remembers it. The first
// sample is always immobile.
func (t *Translation) Classify(x float64) Direction {
	prev, had := t.prev, t.hasPrev
	t.prev, t.hasPrev = x, true
	if !had {
		return DirectionImmobile
	}

	delta := x - prev
	dec, inc := DirectionRight, DirectionLeft
	if !t.Mirror {
		dec, inc = DirectionLeft, DirectionRight
	}
	switch {
	case delta < -t.Threshold:
		return dec
	case delta > t.Threshold:
		return inc
	default:
		return DirectionImmobile
	}
}

// Reset forgets the previous sample.
func (t *Translation) Reset() {
	t.prev, t.hasPrev = 0, false
}

// IsPinch reports whether the thumb and index tips are closer than limit
// pixels.
func IsPinch(thumbTip, indexTip Point, limit float64) bool {
	return thumbTip.Dist(indexTip) < limit
}
