package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/gesture"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type gestureGame struct{ stubGame }

func (g *gestureGame) AttachGesture(*gesture.Cell, gesture.Mode) {}

func TestRegistryListSorted(t *testing.T) {
	r := New()
	r.Register("pong", func() Game { return &gestureGame{stubGame{"pong", "Pong"}} })
	r.Register("breakout", func() Game { return &stubGame{"breakout", "Breakout"} })

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d games, want 2", len(list))
	}
	if list[0].ID != "breakout" || list[1].ID != "pong" {
		t.Errorf("List() order = %v", list)
	}
	if list[0].Gesture || !list[1].Gesture {
		t.Errorf("gesture flags = %v, %v", list[0].Gesture, list[1].Gesture)
	}
	if list[1].Title != "Pong" {
		t.Errorf("title = %q", list[1].Title)
	}
}

func TestRegistryCreate(t *testing.T) {
	r := New()
	r.Register("pong", func() Game { return &stubGame{"pong", "Pong"} })

	g, err := r.Create("pong")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "pong" {
		t.Errorf("ID() = %q", g.ID())
	}
	other, _ := r.Create("pong")
	if other == g {
		t.Error("Create() returned the same instance twice")
	}

	if _, err := r.Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, want ErrUnknownGame", err)
	}
	if r.Exists("missing") || !r.Exists("pong") {
		t.Error("Exists() wrong")
	}
}

func TestRegistryPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "pong"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Register("pong", func() Game { return &stubGame{"pong", "Pong"} })
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			r.Register(tt.id, func() Game { return &stubGame{tt.id, "X"} })
		})
	}
}
