package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start flappy in interactive menu mode.

Pick a difficulty with left/right, then Play. After a session you
return to the menu. Tab opens the scoreboard.

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./flappy.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := openSession(flagConfig, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.applyDifficulty(flagDifficulty); err != nil {
		return err
	}

	rt := runtimeConfig()

	// Menu loop
	for {
		choice, err := tui.RunMenu(s.progress, rt.ScreenW, rt.ScreenH)
		if err != nil {
			return err
		}

		switch choice {
		case tui.MenuPlay:
			// The menu may have changed the difficulty
			s.cfg = s.prepare(s.cfg)
			if err := playSession(s, rt); err != nil {
				return err
			}

		case tui.MenuScores:
			var source tui.ScoreSource
			if s.store != nil {
				source = s.store
			}
			goBack, err := tui.RunScoreboard(source, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
