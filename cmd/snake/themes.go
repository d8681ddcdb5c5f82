package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all board themes",
	Long:  `Shows every registered board theme with a sample of its glyphs.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Fprintln(out, "No themes available.")
		return
	}

	fmt.Fprintln(out, "Available themes:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Sample")
	fmt.Fprintf(out, "  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "------")

	for _, info := range themes {
		sample := ""
		if t, err := registry.Lookup(info.ID); err == nil {
			g := t.Glyphs
			sample = string([]rune{g.Body.Rune, g.Body.Rune, g.HeadFor(core.DirRight).Rune, ' ', g.Food.Rune})
		}
		fmt.Fprintf(out, "  %-*s  %-16s  %s\n", maxIDLen, info.ID, info.Title, sample)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake --theme <id>' to play with a theme.")
}
