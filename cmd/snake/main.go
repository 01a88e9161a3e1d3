// snake is a terminal snake game.
//
// Usage:
//
//	snake                  - Start the mode picker menu
//	snake play [mode]      - Play a mode directly (default: classic)
//	snake list             - List available modes
//	snake scores [mode]    - Show high scores and statistics
//
// Global flags:
//
//	--db <path>            - Set database path (default: ~/.snake/scores.db)
//	--config <path>        - Load a custom game config YAML
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--log-file <path>      - Write logs to a file (empty disables logging)
//	--debug                - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
	flagDebug      bool
)

var (
	logger   = log.New(io.Discard)
	closeLog = func() {}
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow, in your terminal",
	Long: `Snake is the classic game played on a grid in your terminal.

Running snake without a command opens the mode picker. After a game you
return to the menu to pick again.

Available commands:
  play     - Play a mode directly
  list     - Show all available modes
  scores   - View high scores

Examples:
  snake
  snake play maze --difficulty hard
  snake scores classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, closer, err := newLogger(flagLogFile, flagDebug)
		if err != nil {
			return err
		}
		logger, closeLog = l, closer
		return nil
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultPath("scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", config.DefaultPath("snake.log"), "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
}
