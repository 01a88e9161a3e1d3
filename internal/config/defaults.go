package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Rows:  20,
			Cols:  40,
			Walls: 0,
		},
		Snake: BodyConfig{
			StartingLength:   3,
			InitialDirection: "right",
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
		},
		Timing: TimingConfig{
			TickMS: 150,
			FPS:    30,
		},
	}
}
