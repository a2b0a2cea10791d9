package tusmo

import (
	"testing"

	"github.com/vovakirdan/arcade-gym/internal/config"
)

func TestKeyboardAt(t *testing.T) {
	kb := NewKeyboard(config.DefaultTusmoConfig().Keyboard)

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"A centre", 90, 90, 0, 0, true},
		{"A top-left edge", 50, 50, 0, 0, true},
		{"A last pixel", 129, 129, 0, 0, true},
		{"A right edge is outside", 130, 90, 0, 0, false},
		{"gap between A and B", 135, 90, 0, 0, false},
		{"backspace", 500, 60, 0, 5, true},
		{"enter", 500, 330, 3, 5, true},
		{"Z", 500, 420, 4, 5, true},
		{"J row has no sixth key", 500, 150, 0, 0, false},
		{"outside", 10, 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := kb.At(tt.x, tt.y)
			if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
				t.Errorf("At(%d, %d) = %d, %d, %v; want %d, %d, %v", tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
			}
		})
	}
}

func TestKeyLabels(t *testing.T) {
	if Layout[0][5].Label() != "⌫" || Layout[3][5].Label() != "⏎" || Layout[4][5].Label() != "Z" {
		t.Errorf("labels = %s %s %s", Layout[0][5].Label(), Layout[3][5].Label(), Layout[4][5].Label())
	}
}

func TestCursorClamps(t *testing.T) {
	kb := NewKeyboard(config.DefaultTusmoConfig().Keyboard)
	kb.MoveCursor(0, 10)
	if r, c := kb.Cursor(); r != 0 || c != 5 {
		t.Fatalf("cursor = %d,%d, want 0,5", r, c)
	}
	// Row 1 has five keys.
	kb.MoveCursor(1, 0)
	if r, c := kb.Cursor(); r != 1 || c != 4 {
		t.Errorf("cursor = %d,%d, want 1,4", r, c)
	}
	kb.MoveCursor(-5, -5)
	if r, c := kb.Cursor(); r != 0 || c != 0 {
		t.Errorf("cursor = %d,%d, want 0,0", r, c)
	}
}

func TestPresserCooldown(t *testing.T) {
	p := NewPresser(180)
	steps := []struct {
		tick uint64
		want bool
	}{
		{10, true},
		{11, false},
		{189, false},
		{190, true},
		{191, false},
	}
	for _, s := range steps {
		if got := p.Press(s.tick); got != s.want {
			t.Errorf("Press(%d) = %v, want %v", s.tick, got, s.want)
		}
	}
}
