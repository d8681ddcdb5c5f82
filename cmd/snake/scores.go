package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show recorded rounds",
	Long: `Browse the score history kept by the sqlite storage backend.

Without --plain an interactive table opens; tab switches between players.
With the file backend only the single best score is kept, and that is
what gets printed.

Examples:
  snake scores
  snake scores --plain --limit 20
  snake scores alice --plain
  snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of opening the browser")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded history")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cfg.Storage.Backend == config.BackendFile {
		store := storage.NewFileStore(config.ExpandPath(cfg.Storage.Path), openLogger(os.Stderr, cfg.Log, "snake"))
		fmt.Fprintf(out, "High score: %d\n", store.Load())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Set storage.backend to sqlite to keep a history of rounds.")
		return nil
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Score history cleared.")
		return nil
	}

	player := ""
	if len(args) > 0 {
		player = args[0]
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) && player == "" {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(out, store, player, flagLimit)
}

// printScores writes the best rounds as a plain table.
func printScores(w io.Writer, store *storage.Store, player string, limit int) error {
	scores, err := store.TopScores(player, limit)
	if err != nil {
		return err
	}

	title := "High Scores"
	if player != "" {
		title += " - " + player
	}
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(title))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Length", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "----")
	for _, row := range tui.ScoreRows(scores) {
		fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-12s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	stats, err := store.GetStats()
	if err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
