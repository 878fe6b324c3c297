package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start playing straight away.

Each crash costs a heart. With no hearts left the game shows how long
until the next one comes back.

Controls:
  Space/Up   - Flap
  P/Esc      - Pause
  R/Enter    - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower pipes, wider spacing
  normal - Default tuning
  hard   - Faster pipes, tighter spacing

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default: last used)")
		c.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
		c.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the TUI runs")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	return playSession(s, runtimeConfig())
}

// playSession runs one TUI play session until the player quits.
func playSession(s *session, rt core.RuntimeConfig) error {
	opts := tui.Options{
		Runtime:  rt,
		Progress: s.progress,
		Prepare:  s.prepare,
		Logger:   s.logger,
	}

	if flagWatch {
		if path := config.Resolve(flagConfig); path != "" {
			w, err := config.NewWatcher(path, s.logger)
			if err != nil {
				s.logger.Warn("config watch disabled", "path", path, "error", err)
			} else {
				defer w.Close()
				opts.Watcher = w
			}
		} else {
			s.logger.Warn("config watch disabled, no config file in use")
		}
	}

	return tui.Run(flappy.New(s.cfg), opts)
}

// runtimeConfig sizes the run to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playLogger keeps log output off the alt screen: it goes to --log-file or
// nowhere. The returned func closes the log file.
func playLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger, err := newLogger(w)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
