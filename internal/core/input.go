package core

// Action is a semantic key intent, abstracted from the physical key.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter
	ActionDelete         // Backspace
	ActionPress          // Space: press the key under the cursor
	ActionBack           // Esc, B
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionDelete:  "Delete",
	ActionPress:   "Press",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds everything the player did during one tick: the actions
// triggered and any letters typed.
type InputFrame struct {
	Actions map[Action]bool
	Text    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Type appends a typed rune to the frame.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Text) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Text = f.Text[:0]
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	c.Text = append([]rune(nil), f.Text...)
	return c
}
