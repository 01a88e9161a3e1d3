package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Run: func(cmd *cobra.Command, _ []string) {
		printModes(cmd.OutOrStdout())
	},
}

func printModes(w io.Writer) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Fprintf(w, "  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, m := range modes {
		fmt.Fprintf(w, "  %-*s  %-8s  %s\n", maxIDLen, m.ID, m.Title, m.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake play <id>' to play a mode.")
}
