// Package config loads the YAML settings for the games, the loop and the
// gesture tracker. Every file has an embedded default, so a bare install
// runs without any config on disk.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-gym/internal/gesture"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

// PlayfieldConfig is the simulated field size in pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig describes the ball.
type BallConfig struct {
	Radius       int `yaml:"radius"`
	Speed        int `yaml:"speed"`
	ServeOffsetY int `yaml:"serve_offset_y"`
}

// PaddleConfig describes a paddle and where it sits.
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
	Margin int `yaml:"margin"`
}

// BlocksConfig describes the Breakout block grid.
type BlocksConfig struct {
	Rows    int `yaml:"rows"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Life    int `yaml:"life"`
	OriginX int `yaml:"origin_x"`
	OriginY int `yaml:"origin_y"`
	PitchX  int `yaml:"pitch_x"`
	PitchY  int `yaml:"pitch_y"`
	Points  int `yaml:"points"`
}

// BreakoutConfig holds all Breakout settings.
type BreakoutConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Blocks    BlocksConfig    `yaml:"blocks"`
	Lives     int             `yaml:"lives"`
}

// Sim converts the settings to a simulation config.
func (c BreakoutConfig) Sim() sim.Config {
	return sim.Config{
		Mode:         sim.ModeBreakout,
		Width:        c.Playfield.Width,
		Height:       c.Playfield.Height,
		BallRadius:   c.Ball.Radius,
		BallSpeed:    c.Ball.Speed,
		ServeOffsetY: c.Ball.ServeOffsetY,
		PaddleW:      c.Paddle.Width,
		PaddleH:      c.Paddle.Height,
		PaddleSpeed:  c.Paddle.Speed,
		PaddleMargin: c.Paddle.Margin,
		Lives:        c.Lives,
		BlockRows:    c.Blocks.Rows,
		BlockW:       c.Blocks.Width,
		BlockH:       c.Blocks.Height,
		BlockLife:    c.Blocks.Life,
		BlockOriginX: c.Blocks.OriginX,
		BlockOriginY: c.Blocks.OriginY,
		BlockPitchX:  c.Blocks.PitchX,
		BlockPitchY:  c.Blocks.PitchY,
		BlockPoints:  c.Blocks.Points,
	}
}

// Validate checks the settings.
func (c BreakoutConfig) Validate() error {
	return c.Sim().Validate()
}

// OpponentConfig configures the Pong bot.
type OpponentConfig struct {
	Enabled  bool `yaml:"enabled"`
	DeadZone int  `yaml:"dead_zone"`
}

// PongConfig holds all Pong settings.
type PongConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Opponent  OpponentConfig  `yaml:"opponent"`
}

// Sim converts the settings to a simulation config.
func (c PongConfig) Sim() sim.Config {
	return sim.Config{
		Mode:         sim.ModePong,
		Width:        c.Playfield.Width,
		Height:       c.Playfield.Height,
		BallRadius:   c.Ball.Radius,
		BallSpeed:    c.Ball.Speed,
		ServeOffsetY: c.Ball.ServeOffsetY,
		PaddleW:      c.Paddle.Width,
		PaddleH:      c.Paddle.Height,
		PaddleSpeed:  c.Paddle.Speed,
		PaddleMargin: c.Paddle.Margin,
		Opponent:     c.Opponent.Enabled,
	}
}

// Validate checks the settings.
func (c PongConfig) Validate() error {
	if c.Opponent.DeadZone < 0 {
		return fmt.Errorf("%w: opponent dead zone %d", sim.ErrInvalidConfig, c.Opponent.DeadZone)
	}
	return c.Sim().Validate()
}

// LoopConfig configures the fixed-rate driver.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
	// LogEvery logs a frame summary every N ticks in headless runs.
	LogEvery uint64 `yaml:"log_every"`
}

// Validate checks the settings.
func (c LoopConfig) Validate() error {
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("config: tick rate %d outside [1, 1000]", c.TickRate)
	}
	return nil
}

// GestureConfig configures the hand tracker.
type GestureConfig struct {
	// Source is a landmark stream path; "-" is stdin, empty disables gestures.
	Source        string  `yaml:"source"`
	Mode          string  `yaml:"mode"`
	Hand          string  `yaml:"hand"`
	Threshold     float64 `yaml:"threshold"`
	Mirror        bool    `yaml:"mirror"`
	PinchDistance float64 `yaml:"pinch_distance"`
}

// Tracker converts the settings to tracker thresholds.
func (c GestureConfig) Tracker() gesture.Config {
	return gesture.Config{
		Hand:          c.Hand,
		Threshold:     c.Threshold,
		Mirror:        c.Mirror,
		PinchDistance: c.PinchDistance,
	}
}

// Validate checks the settings.
func (c GestureConfig) Validate() error {
	switch gesture.Mode(c.Mode) {
	case gesture.ModeTranslation, gesture.ModeThumb:
	default:
		return fmt.Errorf("config: unknown gesture mode %q", c.Mode)
	}
	if c.Threshold < 0 || c.PinchDistance < 0 {
		return errors.New("config: gesture thresholds must not be negative")
	}
	return nil
}

// KeyboardConfig lays out the virtual keyboard in pointer pixels.
type KeyboardConfig struct {
	KeySize  int     `yaml:"key_size"`
	Spacing  int     `yaml:"spacing"`
	OriginX  int     `yaml:"origin_x"`
	OriginY  int     `yaml:"origin_y"`
	Cooldown float64 `yaml:"cooldown_seconds"`
}

// CooldownTicks converts the press cooldown to ticks at tickRate.
func (k KeyboardConfig) CooldownTicks(tickRate int) int {
	d := time.Duration(k.Cooldown * float64(time.Second))
	return int(d * time.Duration(tickRate) / time.Second)
}

// TusmoConfig holds the word game settings.
type TusmoConfig struct {
	Words       []string       `yaml:"words"`
	MaxAttempts int            `yaml:"max_attempts"`
	Keyboard    KeyboardConfig `yaml:"keyboard"`
}

// Validate checks the settings.
func (c TusmoConfig) Validate() error {
	if len(c.Words) == 0 {
		return errors.New("config: tusmo needs at least one word")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config: tusmo max attempts %d", c.MaxAttempts)
	}
	if c.Keyboard.KeySize <= 0 || c.Keyboard.Spacing < 0 {
		return fmt.Errorf("config: keyboard key size %d spacing %d", c.Keyboard.KeySize, c.Keyboard.Spacing)
	}
	return nil
}
