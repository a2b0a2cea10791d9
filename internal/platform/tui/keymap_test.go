package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-gym/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyArcade(t *testing.T) {
	km := NewKeyMapper(false)
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"wasd", runes("d"), core.ActionRight, false},
		{"pause", runes("p"), core.ActionPause, false},
		{"restart", runes("r"), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q quits", runes("q"), core.ActionNone, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{"unmapped", runes("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := core.NewInputFrame()
			quit := km.MapKey(tt.msg, &f)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if tt.action != core.ActionNone && !f.Has(tt.action) {
				t.Errorf("frame lacks %v", tt.action)
			}
			if tt.action == core.ActionNone && !f.Empty() {
				t.Errorf("frame not empty: %+v", f)
			}
		})
	}
}

func TestMapKeyText(t *testing.T) {
	km := NewKeyMapper(true)
	f := core.NewInputFrame()
	for _, msg := range []tea.KeyMsg{runes("q"), runes("w"), runes("é"), runes("3")} {
		if km.MapKey(msg, &f) {
			t.Fatalf("%q should not quit in text mode", msg.String())
		}
	}
	if !slices.Equal(f.Text, []rune("qwé")) {
		t.Errorf("text = %q", string(f.Text))
	}
	if f.Has(core.ActionUp) {
		t.Error("w mapped to an action in text mode")
	}

	km.MapKey(tea.KeyMsg{Type: tea.KeyBackspace}, &f)
	km.MapKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &f)
	if !f.Has(core.ActionDelete) || !f.Has(core.ActionPress) {
		t.Errorf("actions = %v", f.Actions)
	}
	if !km.MapKey(tea.KeyMsg{Type: tea.KeyEsc}, &f) {
		t.Error("esc should quit")
	}
}

func TestMapMenuKey(t *testing.T) {
	km := NewKeyMapper(false)
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapMenuKey(tt.msg); got != tt.want {
			t.Errorf("MapMenuKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
