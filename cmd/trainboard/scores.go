package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trainboard/internal/platform/tui"
	"github.com/vovakirdan/trainboard/internal/registry"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode, or browse all modes interactively
when no mode is given.

Examples:
  trainboard scores
  trainboard scores snk
  trainboard scores tme --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("no mode given; pass one of the labels from 'trainboard list'")
		}
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	info, ok := registry.ByLabel(args[0])
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'trainboard list')", args[0])
	}

	if flagClear {
		if err := store.ClearScores(info.Label); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(info.Label, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, entry := range scores {
		run := entry.Session
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-8s  %s\n", i+1, entry.Score, run, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(info.Label)
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d  Rounds: %d  Average: %.1f  Runs: %d\n",
			stats.HighScore, stats.Rounds, stats.AvgScore, stats.Sessions)
	}
	return nil
}
