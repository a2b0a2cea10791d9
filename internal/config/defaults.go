package config

import (
	_ "embed"

	"github.com/vovakirdan/arcade-gym/internal/gesture"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/loop.yaml
var defaultLoopYAML []byte

//go:embed defaults/gesture.yaml
var defaultGestureYAML []byte

//go:embed defaults/tusmo.yaml
var defaultTusmoYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout settings.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{Width: 1280, Height: 720},
		Ball:      BallConfig{Radius: 6, Speed: 7, ServeOffsetY: -10},
		Paddle:    PaddleConfig{Width: 112, Height: 18, Speed: 10, Margin: 30},
		Blocks: BlocksConfig{
			Rows: 3, Width: 61, Height: 20, Life: 2,
			OriginX: 15, OriginY: 5, PitchX: 64, PitchY: 21,
			Points: 10,
		},
		Lives: 3,
	}
}

// DefaultPongConfig returns the built-in Pong settings.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PlayfieldConfig{Width: 1280, Height: 720},
		Ball:      BallConfig{Radius: 10, Speed: 7},
		Paddle:    PaddleConfig{Width: 10, Height: 100, Speed: 10, Margin: 50},
		Opponent:  OpponentConfig{Enabled: true, DeadZone: 0},
	}
}

// DefaultLoopConfig returns the built-in loop settings.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{TickRate: 60, LogEvery: 60}
}

// DefaultGestureConfig returns the built-in tracker settings.
func DefaultGestureConfig() GestureConfig {
	d := gesture.DefaultConfig()
	return GestureConfig{
		Mode:          string(gesture.ModeTranslation),
		Hand:          d.Hand,
		Threshold:     d.Threshold,
		Mirror:        d.Mirror,
		PinchDistance: d.PinchDistance,
	}
}

// DefaultTusmoConfig returns the built-in word game settings.
func DefaultTusmoConfig() TusmoConfig {
	return TusmoConfig{
		Words:       []string{"PYTHON", "TUSMO", "CODAGE", "FENETRE", "BOUTON"},
		MaxAttempts: 6,
		Keyboard: KeyboardConfig{
			KeySize: 80, Spacing: 10, OriginX: 50, OriginY: 50,
			Cooldown: 3,
		},
	}
}
