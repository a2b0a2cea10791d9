package tusmo

import (
	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/core"
)

// KeyKind distinguishes letter keys from the two editing keys.
type KeyKind int

const (
	KeyLetter KeyKind = iota
	KeyBackspace
	KeyEnter
)

// Key is one virtual keyboard key.
type Key struct {
	Kind   KeyKind
	Letter rune
}

// Label returns what the key shows.
func (k Key) Label() string {
	switch k.Kind {
	case KeyBackspace:
		return "⌫"
	case KeyEnter:
		return "⏎"
	default:
		return string(k.Letter)
	}
}

func letters(s string) []Key {
	keys := make([]Key, 0, len(s)+1)
	for _, r := range s {
		keys = append(keys, Key{Kind: KeyLetter, Letter: r})
	}
	return keys
}

// Layout is the on-screen key arrangement, row by row.
var Layout = [][]Key{
	append(letters("ABCDE"), Key{Kind: KeyBackspace}),
	letters("FGHIJ"),
	letters("KLMNO"),
	append(letters("PQRST"), Key{Kind: KeyEnter}),
	letters("UVWXYZ"),
}

// Keyboard places Layout in pointer space and tracks a key cursor for
// players without a pointer.
type Keyboard struct {
	rects [][]core.Rect

	cursorRow int
	cursorCol int
}

// NewKeyboard lays the keys out with cfg's size, spacing and origin.
func NewKeyboard(cfg config.KeyboardConfig) *Keyboard {
	k := &Keyboard{rects: make([][]core.Rect, len(Layout))}
	step := cfg.KeySize + cfg.Spacing
	for i, row := range Layout {
		k.rects[i] = make([]core.Rect, len(row))
		for j := range row {
			k.rects[i][j] = core.NewRect(cfg.OriginX+j*step, cfg.OriginY+i*step, cfg.KeySize, cfg.KeySize)
		}
	}
	return k
}

// Rect returns the pointer-space rectangle of the key at row, col.
func (k *Keyboard) Rect(row, col int) core.Rect { return k.rects[row][col] }

// At returns the key under pointer (x, y). A key owns its top and left
// edges; the right and bottom edges fall in the gap.
func (k *Keyboard) At(x, y int) (row, col int, ok bool) {
	for i, row := range k.rects {
		for j, r := range row {
			if r.Contains(x, y) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Cursor returns the key under the cursor.
func (k *Keyboard) Cursor() (row, col int) { return k.cursorRow, k.cursorCol }

// MoveCursor shifts the cursor, clamping to the layout. Moving to a
// shorter row snaps to its last key.
func (k *Keyboard) MoveCursor(dRow, dCol int) {
	k.cursorRow = core.Clamp(k.cursorRow+dRow, 0, len(Layout)-1)
	k.cursorCol = core.Clamp(k.cursorCol+dCol, 0, len(Layout[k.cursorRow])-1)
}

// Presser rate-limits pinch presses: after a press, further presses are
// ignored for cooldown ticks.
type Presser struct {
	cooldown int
	next     uint64
}

// NewPresser returns a presser with the given cooldown in ticks.
func NewPresser(cooldown int) *Presser {
	return &Presser{cooldown: max(cooldown, 0)}
}

// Press reports whether a press at tick is accepted.
func (p *Presser) Press(tick uint64) bool {
	if tick < p.next {
		return false
	}
	p.next = tick + uint64(p.cooldown)
	return true
}
