package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/progress"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best score, coin total and top runs",
	Long: `Display the best runs recorded in the database.

Examples:
  flappy scores
  flappy scores --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(progress.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	sum, err := store.Summarize(progress.GameID)
	if err != nil {
		return fmt.Errorf("retrieving summary: %w", err)
	}

	fmt.Println("High Scores - Flappy")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Coins, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Coins: %d\n", sum.BestScore, sum.Runs, sum.TotalCoins)
	if sum.Runs > len(scores) {
		fmt.Printf("(%d more runs not shown)\n", sum.Runs-len(scores))
	}
	return nil
}
