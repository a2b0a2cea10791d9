package core

import "testing"

func TestBallTouches(t *testing.T) {
	block := NewRect(100, 100, 60, 20) // spans x 100..160, y 100..120

	tests := []struct {
		name     string
		cx, cy   int
		expected bool
	}{
		{"inside", 130, 110, true},
		{"touching left edge", 94, 110, true},
		{"one pixel left", 93, 110, false},
		{"touching right edge", 166, 110, true},
		{"one pixel right", 167, 110, false},
		{"touching top edge", 130, 94, true},
		{"one pixel above", 130, 93, false},
		{"touching bottom edge", 130, 126, true},
		{"one pixel below", 130, 127, false},
		{"corner contact", 94, 94, true},
		{"diagonal miss", 93, 93, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BallTouches(tc.cx, tc.cy, 6, block); got != tc.expected {
				t.Errorf("BallTouches(%d, %d) = %v, expected %v", tc.cx, tc.cy, got, tc.expected)
			}
		})
	}
}

func TestBallTouchesMatchesSquareBounds(t *testing.T) {
	// The closed-interval test must agree with the bounding square on both
	// axes; an asymmetric comparison would break one of these.
	sq := SquareAround(50, 50, 10)
	if sq.X != 40 || sq.Y != 40 || sq.Right() != 60 || sq.Bottom() != 60 {
		t.Fatalf("SquareAround = %+v", sq)
	}
	for _, r := range []Rect{
		NewRect(60, 45, 5, 5), // right edge
		NewRect(35, 45, 5, 5), // left edge
		NewRect(45, 60, 5, 5), // bottom edge
		NewRect(45, 35, 5, 5), // top edge
	} {
		if !BallTouches(50, 50, 10, r) {
			t.Errorf("expected contact with %+v", r)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, from, to, expected int
	}{
		{640, 1280, 80, 40},
		{0, 1280, 80, 0},
		{1279, 1280, 80, 79},
		{10, 0, 80, 0},
	}

	for _, tc := range tests {
		if got := Scale(tc.v, tc.from, tc.to); got != tc.expected {
			t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tc.v, tc.from, tc.to, got, tc.expected)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if Sign(-7) != -1 || Sign(7) != 1 || Sign(0) != 0 {
		t.Error("Sign returned wrong value")
	}
}
