package tusmo

import (
	"errors"
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"python", "PYTHON", false},
		{"FENÊTRE", "FENETRE", false},
		{"fenêtre", "FENETRE", false},
		{"Éçà", "ECA", false},
		{"C3PO", "", true},
		{"two words", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadWord) {
					t.Errorf("Normalize(%q) error = %v, want ErrBadWord", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Normalize(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	const (
		H = MarkHit
		P = MarkPresent
		M = MarkMiss
	)
	tests := []struct {
		name          string
		secret, guess string
		want          []Mark
	}{
		{"exact", "PYTHON", "PYTHON", []Mark{H, H, H, H, H, H}},
		{"all misplaced", "TUSMO", "OTUSM", []Mark{P, P, P, P, P}},
		{"single copy hit once", "CODAGE", "CCCCCC", []Mark{H, M, M, M, M, M}},
		{"two copies both hit", "BOUTON", "OOOOOO", []Mark{M, H, M, M, H, M}},
		{"duplicates consume remaining", "ALLEE", "LLAMA", []Mark{P, H, P, M, M}},
		{"hit settled before present", "TUSMO", "OOOOO", []Mark{M, M, M, M, H}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.secret, tt.guess)
			if err != nil {
				t.Fatalf("Score() error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Score(%s, %s) = %v, want %v", tt.secret, tt.guess, got, tt.want)
			}
		})
	}

	if _, err := Score("TUSMO", "TUSMOS"); !errors.Is(err, ErrWrongLength) {
		t.Errorf("length mismatch error = %v", err)
	}
}

func TestScoreNormalizesInput(t *testing.T) {
	got, err := Score("PYTHON", "python")
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	for i, m := range got {
		if m != MarkHit {
			t.Errorf("mark %d = %v, want hit", i, m)
		}
	}

	got, err = Score("fenêtre", "FENETRE")
	if err != nil || got[3] != MarkHit {
		t.Errorf("accented secret: marks=%v err=%v", got, err)
	}

	for _, guess := range []string{"PYTH0N", "PY-HON"} {
		if _, err := Score("PYTHON", guess); !errors.Is(err, ErrBadWord) {
			t.Errorf("Score(PYTHON, %s) error = %v, want ErrBadWord", guess, err)
		}
	}
}

func typeWord(b *Board, s string) {
	for _, r := range s {
		b.Type(r)
	}
}

func TestBoardRevealsFirstLetter(t *testing.T) {
	b, err := NewBoard("fenêtre", 6)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	if b.Secret() != "FENETRE" || b.Len() != 7 {
		t.Fatalf("secret = %q", b.Secret())
	}
	if b.Draft()[0] != 'F' || !b.Locked(0) {
		t.Error("first letter not revealed")
	}
	if b.Backspace() {
		t.Error("Backspace removed a revealed letter")
	}
}

func TestBoardCarriesHitsForward(t *testing.T) {
	b, _ := NewBoard("FENETRE", 6)
	typeWord(b, "enxxxx")
	if _, err := b.Submit(); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	draft := string(b.Draft()[:3])
	if draft != "FEN" {
		t.Errorf("draft starts %q, want FEN", draft)
	}
	for i := range 3 {
		if !b.Locked(i) {
			t.Errorf("position %d not locked", i)
		}
	}
	if b.Draft()[3] != 0 || b.Remaining() != 5 {
		t.Errorf("draft = %q remaining = %d", b.Draft(), b.Remaining())
	}

	// Typing skips locked cells.
	typeWord(b, "e")
	if b.Draft()[3] != 'E' {
		t.Errorf("typed letter landed at %q", b.Draft())
	}
}

func TestBoardTypeSkipsLockedGap(t *testing.T) {
	b, _ := NewBoard("BOUTON", 6)
	if _, err := b.Guess("BXXTXX"); err != nil {
		t.Fatal(err)
	}
	typeWord(b, "ouon")
	if got := string(b.Draft()); got != "BOUTON" {
		t.Fatalf("draft = %q, want BOUTON", got)
	}
	if _, err := b.Submit(); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if !b.Won() || !b.Over() {
		t.Error("expected a win")
	}
}

func TestBoardSubmitIncomplete(t *testing.T) {
	b, _ := NewBoard("TUSMO", 6)
	typeWord(b, "us")
	if _, err := b.Submit(); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("Submit() error = %v, want ErrWrongLength", err)
	}
	if len(b.Rows()) != 0 {
		t.Error("incomplete submit used an attempt")
	}
	if !b.Backspace() || b.Draft()[2] != 0 {
		t.Error("Backspace did not clear the last letter")
	}
}

func TestBoardIgnoresNonLetters(t *testing.T) {
	b, _ := NewBoard("TUSMO", 6)
	for _, r := range "1 ?ü" {
		b.Type(r)
	}
	if got := b.Draft()[1]; got != 'U' {
		t.Errorf("draft = %q, want accent-stripped U only", b.Draft())
	}
	if b.Draft()[2] != 0 {
		t.Error("non-letters were typed")
	}
}

func TestBoardRunsOutOfAttempts(t *testing.T) {
	b, _ := NewBoard("PYTHON", 6)
	for range 6 {
		if _, err := b.Guess("PXXXXX"); err != nil {
			t.Fatalf("Guess() failed: %v", err)
		}
	}
	if !b.Over() || b.Won() || b.Remaining() != 0 {
		t.Errorf("over=%v won=%v remaining=%d", b.Over(), b.Won(), b.Remaining())
	}
	if _, err := b.Guess("PYTHON"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Guess() after loss error = %v, want ErrGameOver", err)
	}
	if b.Type('A') {
		t.Error("Type accepted after game over")
	}
}
