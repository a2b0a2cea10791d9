// Package registry lets games announce themselves from init() so the
// hosts (terminal UI, CLI) can find them by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/gesture"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what a host drives. Games never see the terminal; the host
// maps keys to a core.InputFrame, steps the game once per tick and
// draws it into a screen buffer it owns.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh round sized for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input gathered since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. dst is cleared beforehand.
	Render(dst *core.Screen)

	State() core.GameState
}

// GestureAware is implemented by games that can be steered by hand
// tracking in addition to the keyboard.
type GestureAware interface {
	AttachGesture(cell *gesture.Cell, mode gesture.Mode)
}

// TextInput is implemented by games that take typed letters. The host
// then sends letter keys as text instead of mapping them to actions.
type TextInput interface {
	WantsText() bool
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
	// Gesture reports whether the game implements GestureAware.
	Gesture bool
}

// Factory builds a fresh game instance.
type Factory func() Game

// Registry maps game IDs to factories.
type Registry struct {
	mu    sync.RWMutex
	games map[string]entry
}

type entry struct {
	factory Factory
	info    Info
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{games: make(map[string]entry)}
}

// Register adds a factory. It panics on an empty or duplicate ID since
// both are programming errors caught at init time.
func (r *Registry) Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	g := f()
	_, ga := g.(GestureAware)
	r.games[id] = entry{factory: f, info: Info{ID: id, Title: g.Title(), Gesture: ga}}
}

// List returns every registered game sorted by ID.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.games))
	for _, e := range r.games {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game with the given ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.games[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.games[id]
	return ok
}

var defaultRegistry = New()

// Register adds a factory to the process-wide registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List lists the process-wide registry.
func List() []Info { return defaultRegistry.List() }

// Create builds a game from the process-wide registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists checks the process-wide registry.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
