package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserDir is the per-user directory below $HOME holding configs and data.
const UserDir = ".arcadegym"

// load resolves one config file. Search order: customPath ->
// ~/.arcadegym/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded
// default. Values are decoded over fallback, so a file only needs the
// keys it changes. Only an explicit customPath is allowed to fail.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	file := name + ".yaml"

	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(file), filepath.Join("configs", file)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns ~/.arcadegym/configs/<file>, or "" without a home.
func userConfigPath(file string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserDir, "configs", file)
}

// InDir returns dir/<name>.yaml when it exists, or "" so the regular
// search order applies.
func InDir(dir, name string) string {
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// LoadBreakout loads and validates Breakout settings.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadPong loads and validates Pong settings.
func LoadPong(customPath string) (PongConfig, error) {
	cfg, err := load("pong", customPath, defaultPongYAML, DefaultPongConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadLoop loads and validates loop settings.
func LoadLoop(customPath string) (LoopConfig, error) {
	cfg, err := load("loop", customPath, defaultLoopYAML, DefaultLoopConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadGesture loads and validates tracker settings.
func LoadGesture(customPath string) (GestureConfig, error) {
	cfg, err := load("gesture", customPath, defaultGestureYAML, DefaultGestureConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadTusmo loads and validates word game settings.
func LoadTusmo(customPath string) (TusmoConfig, error) {
	cfg, err := load("tusmo", customPath, defaultTusmoYAML, DefaultTusmoConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
