package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode identifiers. Scores are stored per mode.
const (
	ModeClassic = "classic"
	ModeMaze    = "maze"
	ModeMini    = "mini"
)

func init() {
	registry.Register(registry.Mode{
		ID:          ModeClassic,
		Title:       "Classic",
		Description: "The configured board, no obstacles",
	})
	registry.Register(registry.Mode{
		ID:          ModeMaze,
		Title:       "Maze",
		Description: "Scattered walls, one per 40 cells",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Board.Walls += cfg.Board.Rows * cfg.Board.Cols / 40
		},
	})
	registry.Register(registry.Mode{
		ID:          ModeMini,
		Title:       "Mini",
		Description: "A cramped 10x20 board",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Board.Rows = 10
			cfg.Board.Cols = 20
		},
	})
}

// SettingsFromConfig converts a loaded config into engine settings.
func SettingsFromConfig(cfg config.SnakeConfig) (Settings, error) {
	dir, err := ParseDirection(cfg.Snake.InitialDirection)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	s := Settings{
		Rows:             cfg.Board.Rows,
		Cols:             cfg.Board.Cols,
		StartingLength:   cfg.Snake.StartingLength,
		PointsPerFood:    cfg.Scoring.PointsPerFood,
		InitialDirection: dir,
		Walls:            cfg.Board.Walls,
	}
	return s, s.Validate()
}
