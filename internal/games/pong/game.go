// Package pong registers the Pong arena: the player guards the left edge
// against a chase bot on the right. First to WinScore points wins.
package pong

import (
	"sync"

	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/games/arena"
	"github.com/vovakirdan/arcade-gym/internal/registry"
)

// WinScore ends a match.
const WinScore = 5

var (
	settingsMu sync.RWMutex
	configPath string
	difficulty = config.DifficultyNormal
)

// SetConfigPath sets the YAML file read on every reset; "" uses the
// search path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficulty sets the preset applied on every reset.
func SetDifficulty(preset config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficulty = preset
}

// Load reads the configured settings with the difficulty preset applied.
func Load() (arena.Setup, error) {
	settingsMu.RLock()
	path, preset := configPath, difficulty
	settingsMu.RUnlock()

	cfg, err := config.LoadPong(path)
	if err != nil {
		return arena.Setup{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return arena.Setup{}, err
	}
	return arena.Setup{
		Sim:           cfg.Sim(),
		ChaseDeadZone: cfg.Opponent.DeadZone,
		WinScore:      WinScore,
	}, nil
}

// New creates a Pong game.
func New() *arena.Game {
	return arena.New("pong", "Pong", Load)
}

func init() {
	registry.Register("pong", func() registry.Game { return New() })
}
