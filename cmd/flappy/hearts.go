package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/hearts"
)

var heartsCmd = &cobra.Command{
	Use:   "hearts",
	Short: "Show lives and the next heart countdown",
	Long: `Reconcile regenerated hearts and print the current lives.

Examples:
  flappy hearts
  flappy hearts --db ./flappy.db`,
	Args: cobra.NoArgs,
	RunE: runHearts,
}

func runHearts(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	s, err := openSession("", logger)
	if err != nil {
		return err
	}
	defer s.Close()

	lives := s.progress.Reconcile()
	limit := s.progress.MaxLives()

	fmt.Printf("Lives: %s%s (%d/%d)\n", strings.Repeat("♥", lives), strings.Repeat("♡", limit-lives), lives, limit)
	if lives < limit {
		fmt.Printf("Next heart in %s\n", hearts.FormatCountdown(s.progress.NextHeartIn()))
	} else {
		fmt.Println("Hearts are full.")
	}
	return nil
}
