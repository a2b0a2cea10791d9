// Package gesture turns hand-landmark frames into paddle controls. A
// Tracker goroutine reads frames from a Source, classifies them and
// publishes the latest reading into a Cell; the game loop samples the
// cell once per tick and never waits on the tracker.
package gesture

import "math"

// Landmark indices in a 21-point hand model.
const (
	Wrist    = 0
	ThumbTip = 4
	IndexTip = 8

	LandmarkCount = 21
)

// Point is a landmark position. In a Frame coordinates are normalized to
// [0, 1]; Frame.Pixel scales them to image pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Hand is one detected hand.
type Hand struct {
	Label     string  `json:"label"` // "left" or "right" as reported by the detector
	Landmarks []Point `json:"landmarks"`
}

// Frame is one detector result.
type Frame struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Hands  []Hand `json:"hands"`
}

// Default image size assumed when a frame omits it.
const (
	DefaultFrameWidth  = 640
	DefaultFrameHeight = 480
)

// Pixel returns landmark i of h in image pixels.
func (f Frame) Pixel(h Hand, i int) (Point, bool) {
	if i < 0 || i >= len(h.Landmarks) {
		return Point{}, false
	}
	w, ht := f.Width, f.Height
	if w <= 0 {
		w = DefaultFrameWidth
	}
	if ht <= 0 {
		ht = DefaultFrameHeight
	}
	p := h.Landmarks[i]
	return Point{X: p.X * float64(w), Y: p.Y * float64(ht)}, true
}

// Find returns the first hand with the given label, or the first hand at
// all when label is empty.
func (f Frame) Find(label string) (Hand, bool) {
	for _, h := range f.Hands {
		if label == "" || h.Label == label {
			return h, true
		}
	}
	return Hand{}, false
}
