package tusmo

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrWrongLength = errors.New("tusmo: guess has the wrong length")
	ErrGameOver    = errors.New("tusmo: game is over")
	ErrBadWord     = errors.New("tusmo: word must contain only letters A-Z")
)

// Normalize upper-cases s and strips accents, so "fenêtre" becomes
// "FENETRE". Anything left outside A-Z is an error.
func Normalize(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Upper(language.Und))
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("tusmo: normalize %q: %w", s, err)
	}
	if out == "" {
		return "", fmt.Errorf("%w: empty", ErrBadWord)
	}
	for _, r := range out {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrBadWord, s)
		}
	}
	return out, nil
}

// normalizeLetter maps a typed rune to A-Z, reporting false for anything
// that is not a letter.
func normalizeLetter(r rune) (rune, bool) {
	s, err := Normalize(string(r))
	if err != nil || len(s) != 1 {
		return 0, false
	}
	return rune(s[0]), true
}

// Mark is the verdict for one letter of a guess.
type Mark int8

const (
	MarkMiss    Mark = iota // not in the word, or all copies already accounted for
	MarkPresent             // in the word at another position
	MarkHit                 // right letter, right place
)

// String returns the mark name.
func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// Score marks guess against secret. Hits are settled first; a present
// mark then consumes one of the secret's unmatched copies of that letter,
// so a letter is never reported more often than the secret holds it.
// Both words are normalized first; letters outside A-Z are ErrBadWord.
func Score(secret, guess string) ([]Mark, error) {
	secret, err := Normalize(secret)
	if err != nil {
		return nil, err
	}
	guess, err = Normalize(guess)
	if err != nil {
		return nil, err
	}
	if len(guess) != len(secret) {
		return nil, fmt.Errorf("%w: got %d letters, want %d", ErrWrongLength, len(guess), len(secret))
	}
	marks := make([]Mark, len(guess))
	var left [26]int
	for i := range secret {
		if guess[i] == secret[i] {
			marks[i] = MarkHit
			continue
		}
		left[secret[i]-'A']++
	}
	for i := range guess {
		if marks[i] == MarkHit {
			continue
		}
		if c := guess[i] - 'A'; left[c] > 0 {
			left[c]--
			marks[i] = MarkPresent
		}
	}
	return marks, nil
}

// Row is one submitted guess.
type Row struct {
	Word  string
	Marks []Mark
}

// Board is a round in progress: the submitted rows plus the row being
// typed. Positions already found are pre-filled and locked in the draft.
type Board struct {
	secret string
	max    int
	rows   []Row
	known  []byte // found letter per position, 0 if unknown
	draft  []byte // 0 marks an empty cell
	won    bool
}

// NewBoard starts a round for secret with maxAttempts rows. The first
// letter is revealed.
func NewBoard(secret string, maxAttempts int) (*Board, error) {
	w, err := Normalize(secret)
	if err != nil {
		return nil, err
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("tusmo: max attempts %d", maxAttempts)
	}
	b := &Board{
		secret: w,
		max:    maxAttempts,
		known:  make([]byte, len(w)),
		draft:  make([]byte, len(w)),
	}
	b.known[0] = w[0]
	b.refill()
	return b, nil
}

func (b *Board) refill() {
	copy(b.draft, b.known)
}

// Len returns the secret's length.
func (b *Board) Len() int { return len(b.secret) }

// Secret returns the word to find.
func (b *Board) Secret() string { return b.secret }

// Rows returns the submitted guesses.
func (b *Board) Rows() []Row { return b.rows }

// MaxAttempts returns the number of rows.
func (b *Board) MaxAttempts() int { return b.max }

// Remaining returns how many guesses are left.
func (b *Board) Remaining() int { return b.max - len(b.rows) }

// Won reports whether the secret was found.
func (b *Board) Won() bool { return b.won }

// Over reports whether no more guesses are accepted.
func (b *Board) Over() bool { return b.won || len(b.rows) >= b.max }

// Draft returns the current row; 0 marks an empty cell.
func (b *Board) Draft() []byte { return b.draft }

// Locked reports whether position i holds a found letter.
func (b *Board) Locked(i int) bool { return b.known[i] != 0 }

// Type puts letter into the first empty cell of the draft.
func (b *Board) Type(letter rune) bool {
	if b.Over() {
		return false
	}
	l, ok := normalizeLetter(letter)
	if !ok {
		return false
	}
	for i, c := range b.draft {
		if c == 0 {
			b.draft[i] = byte(l)
			return true
		}
	}
	return false
}

// Backspace clears the last typed cell. Locked cells stay.
func (b *Board) Backspace() bool {
	if b.Over() {
		return false
	}
	for i := len(b.draft) - 1; i >= 0; i-- {
		if b.draft[i] != 0 && !b.Locked(i) {
			b.draft[i] = 0
			return true
		}
	}
	return false
}

// Submit scores the draft. An incomplete draft returns ErrWrongLength and
// costs nothing.
func (b *Board) Submit() ([]Mark, error) {
	n := 0
	for _, c := range b.draft {
		if c != 0 {
			n++
		}
	}
	if n != len(b.draft) {
		return nil, fmt.Errorf("%w: got %d letters, want %d", ErrWrongLength, n, len(b.draft))
	}
	return b.Guess(string(b.draft))
}

// Guess scores word directly, bypassing the draft.
func (b *Board) Guess(word string) ([]Mark, error) {
	if b.Over() {
		return nil, ErrGameOver
	}
	w, err := Normalize(word)
	if err != nil {
		return nil, err
	}
	marks, err := Score(b.secret, w)
	if err != nil {
		return nil, err
	}

	b.rows = append(b.rows, Row{Word: w, Marks: marks})
	for i, m := range marks {
		if m == MarkHit {
			b.known[i] = w[i]
		}
	}
	b.won = w == b.secret
	b.refill()
	return marks, nil
}
