// Package breakout registers the Breakout arena: a horizontal paddle at
// the bottom, a grid of two-hit blocks and three lives.
package breakout

import (
	"sync"

	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/games/arena"
	"github.com/vovakirdan/arcade-gym/internal/registry"
)

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

	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return arena.Setup{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return arena.Setup{}, err
	}
	return arena.Setup{Sim: cfg.Sim()}, nil
}

// New creates a Breakout game.
func New() *arena.Game {
	return arena.New("breakout", "Breakout", Load)
}

func init() {
	registry.Register("breakout", func() registry.Game { return New() })
}
