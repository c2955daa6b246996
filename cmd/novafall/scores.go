package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmarkhas/novafall/internal/platform/tui"
	"github.com/dmarkhas/novafall/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Show recorded runs ordered by score.

By default an interactive table opens; --plain prints the top 10 runs
to stdout instead.

Examples:
  novafall scores
  novafall scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores to stdout instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Novafall - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'novafall play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range runs {
		total := int(entry.Duration)
		fmt.Printf("  %-4d  %-10d  %-6d  %d:%02d     %s\n",
			i+1, entry.Score, entry.Level, total/60, total%60,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.Stats(); statsErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d runs\n", stats.BestScore, stats.RunCount)
	}
}
