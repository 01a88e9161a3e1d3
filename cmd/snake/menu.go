package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) error {
	scores, history, closeStore := scoreBackends(flagDBPath)
	defer closeStore()

	cfg := runtimeConfig()

	// Fail on a bad config before the menu takes over the terminal
	if _, err := gameOptions(snake.ModeClassic, flagConfig, flagDifficulty, cfg); err != nil {
		return err
	}

	for {
		menuResult, err := tui.RunMenu(scores, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(history, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		opts, err := gameOptions(menuResult.ModeID, flagConfig, flagDifficulty, cfg)
		if err != nil {
			logger.Error("cannot start mode", "mode", menuResult.ModeID, "error", err)
			return err
		}
		opts.Scores = scores

		goBack, err := tui.Run(opts)
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
