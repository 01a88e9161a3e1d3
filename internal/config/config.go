// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// MaxBoardCells caps rows*cols. Far beyond any terminal, small enough that
// the product never overflows.
const MaxBoardCells = 1 << 20

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   BodyConfig    `yaml:"snake"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Walls int `yaml:"walls"` // Random wall cells placed at game start
}

// BodyConfig defines the snake at game start.
type BodyConfig struct {
	StartingLength   int    `yaml:"starting_length"`
	InitialDirection string `yaml:"initial_direction"` // up, down, left or right
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// TimingConfig defines the simulation and render clocks.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // Milliseconds per simulation step
	FPS    int `yaml:"fps"`     // Render frames per second
}

// TickInterval returns the simulation step as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

var directions = map[string]bool{"up": true, "down": true, "left": true, "right": true}

// Validate checks the fields the loader cannot fix up on its own.
// Board geometry is checked again by the engine when a game starts.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols))
	} else if c.Board.Rows > MaxBoardCells/c.Board.Cols {
		errs = append(errs, fmt.Errorf("board %dx%d exceeds %d cells", c.Board.Rows, c.Board.Cols, MaxBoardCells))
	}
	if c.Board.Walls < 0 {
		errs = append(errs, fmt.Errorf("walls must not be negative, got %d", c.Board.Walls))
	}
	if c.Snake.StartingLength <= 0 {
		errs = append(errs, fmt.Errorf("starting_length must be positive, got %d", c.Snake.StartingLength))
	} else if c.Snake.StartingLength > max(c.Board.Rows, c.Board.Cols) {
		errs = append(errs, fmt.Errorf("starting_length %d is longer than the board", c.Snake.StartingLength))
	}
	if !directions[strings.ToLower(strings.TrimSpace(c.Snake.InitialDirection))] {
		errs = append(errs, fmt.Errorf("unknown initial_direction %q", c.Snake.InitialDirection))
	}
	if c.Scoring.PointsPerFood < 0 {
		errs = append(errs, fmt.Errorf("points_per_food must not be negative, got %d", c.Scoring.PointsPerFood))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Timing.FPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset.
// An empty string selects DifficultyNormal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal keeps whatever the loaded config says.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.TickMS = 200
		cfg.Scoring.PointsPerFood = 5
	case DifficultyHard:
		cfg.Timing.TickMS = 90
		cfg.Scoring.PointsPerFood = 20
	}
}
