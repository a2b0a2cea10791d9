package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-gym/internal/core"
)

// KeyMapper turns Bubble Tea key messages into input frames. In text
// mode letter keys are typed instead of triggering WASD actions, so only
// ctrl+c and esc quit.
type KeyMapper struct {
	text bool
}

// NewKeyMapper returns a mapper; text enables letter typing.
func NewKeyMapper(text bool) *KeyMapper {
	return &KeyMapper{text: text}
}

var namedKeys = map[string]core.Action{
	"up":        core.ActionUp,
	"down":      core.ActionDown,
	"left":      core.ActionLeft,
	"right":     core.ActionRight,
	"enter":     core.ActionConfirm,
	"backspace": core.ActionDelete,
	" ":         core.ActionPress,
	"ctrl+p":    core.ActionPause,
}

var letterKeys = map[string]core.Action{
	"w": core.ActionUp,
	"s": core.ActionDown,
	"a": core.ActionLeft,
	"d": core.ActionRight,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"b": core.ActionBack,
	"q": core.ActionQuit,
}

// MapKey adds the key's effect to frame and reports whether it asks to
// quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, frame *core.InputFrame) (quit bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		return true
	}
	if a, ok := namedKeys[key]; ok {
		frame.Set(a)
		return false
	}

	if km.text {
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
			frame.Type(msg.Runes[0])
		}
		return false
	}

	a, ok := letterKeys[key]
	if !ok {
		return false
	}
	if a == core.ActionQuit {
		return true
	}
	frame.Set(a)
	return false
}

// MenuAction is a menu navigation intent.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapMenuKey translates a key to a menu action.
func (km *KeyMapper) MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
