package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset scales a game before it starts. Presets never change
// anything while an episode is running.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty parses a preset name; empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset widens or narrows the paddle and adjusts lives.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = cfg.Paddle.Width * 3 / 2
		cfg.Lives += 2
	case DifficultyHard:
		cfg.Paddle.Width = cfg.Paddle.Width * 3 / 4
		cfg.Lives = max(cfg.Lives-1, 1)
	}
}

// ApplyPongPreset makes the bot lazier or sharper.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Opponent.DeadZone += cfg.Paddle.Height / 2
	case DifficultyHard:
		cfg.Opponent.DeadZone = 0
		cfg.Paddle.Height = cfg.Paddle.Height * 4 / 5
	}
}
