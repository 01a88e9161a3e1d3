package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode, classic if none is given.

Controls:
  Arrows/WASD/hjkl  - Steer
  R                 - Replay (after game over)
  Esc/B             - Back
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - Slower ticks, 5 points per food
  normal  - As configured
  hard    - Faster ticks, 20 points per food

Examples:
  snake play
  snake play maze --difficulty hard
  snake play mini --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := snake.ModeClassic
	if len(args) == 1 {
		modeID = args[0]
	}

	opts, err := gameOptions(modeID, flagConfig, flagDifficulty, runtimeConfig())
	if err != nil {
		return err
	}

	scores, _, closeStore := scoreBackends(flagDBPath)
	defer closeStore()
	opts.Scores = scores

	_, err = tui.Run(opts)
	return err
}
