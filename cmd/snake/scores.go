package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode, or a summary of every mode
when none is given.

Examples:
  snake scores
  snake scores maze
  snake scores maze --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a mode")
		}
		return printSummary(w, store)
	}

	mode, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w; run 'snake list' to see available modes", err)
	}

	if flagClear {
		if err := store.ClearScores(mode.ID); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", mode.ID)
		fmt.Fprintf(w, "Scores for %s cleared.\n", mode.Title)
		return nil
	}
	return printModeScores(w, store, mode)
}

func printModeScores(w io.Writer, store *storage.Store, mode registry.Mode) error {
	scores, err := store.TopScores(mode.ID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", mode.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'snake play %s' to set the first high score!\n", mode.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-14s  %s\n", "Rank", "Score", "Length", "Ended", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-14s  %s\n", "----", "-----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-14s  %s\n",
			i+1, entry.Score, entry.Length, entry.Outcome, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllModesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Scores by mode:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			fmt.Fprintf(w, "  %-8s  %-6d  %-6s  %-8s  %s\n", info.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Fprintf(w, "  %-8s  %-6d  %-6d  %-8.1f  %s\n",
			info.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
