// Package config loads the YAML configuration of the puzzle: board size,
// fallback screen size, cosmetic flags and score recording.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/simplesmart/internal/core"
)

// Config is the effective configuration record.
type Config struct {
	Matrix          MatrixConfig `yaml:"matrix"`
	Screen          ScreenConfig `yaml:"screen"`
	PutApoInScreens bool         `yaml:"put_apo_in_screens"`
	Trail           TrailConfig  `yaml:"trail"`
	RecordScores    bool         `yaml:"record_scores"`
}

// MatrixConfig is the board size in cells.
type MatrixConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScreenConfig is the screen size used when the terminal size is unknown.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TrailConfig controls the chain trail animation.
type TrailConfig struct {
	StepMillis int `yaml:"step_millis"` // 0 disables the animation
}

var (
	// ErrInvalidMatrix is returned when a board dimension is below one.
	ErrInvalidMatrix = errors.New("config: matrix dimensions must be at least 1")
	// ErrInvalidScreen is returned for negative screen dimensions.
	ErrInvalidScreen = errors.New("config: screen dimensions must not be negative")
)

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	if c.Matrix.Width < 1 || c.Matrix.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidMatrix, c.Matrix.Width, c.Matrix.Height)
	}
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidScreen, c.Screen.Width, c.Screen.Height)
	}
	if c.Trail.StepMillis < 0 {
		return fmt.Errorf("config: trail.step_millis must not be negative, got %d", c.Trail.StepMillis)
	}
	return nil
}

// Runtime converts the config to the game's runtime config.
// Zero screen dimensions fall back to the core defaults.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.MatrixW = c.Matrix.Width
	rc.MatrixH = c.Matrix.Height
	if c.Screen.Width > 0 {
		rc.ScreenW = c.Screen.Width
	}
	if c.Screen.Height > 0 {
		rc.ScreenH = c.Screen.Height
	}
	rc.Seed = seed
	return rc
}
