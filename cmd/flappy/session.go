package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/hearts"
	"github.com/vovakirdan/tui-flappy/internal/progress"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// session bundles what every command needs: the effective config, the
// database and the progress manager on top of it.
type session struct {
	cfg      config.FlappyConfig
	store    *storage.Store // nil when the database could not be opened
	progress *progress.Manager
	logger   *log.Logger
}

// openSession loads the config and the progress store. A database that
// cannot be opened degrades to in-memory progress with a warning.
func openSession(configPath string, logger *log.Logger) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}

	var prefs hearts.Prefs
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not be saved", "error", err)
		prefs = hearts.NewMemoryPrefs()
	} else {
		s.store = store
		prefs = store.Prefs(logger)
	}

	s.progress = progress.New(prefs, cfg.Hearts, nil, logger)
	if s.store != nil {
		s.progress.SetRecorder(s.store)
	}
	return s, nil
}

// applyDifficulty selects the preset from the flag, or the stored choice when
// the flag is empty. A flag value is remembered for later sessions.
func (s *session) applyDifficulty(flag string) error {
	preset := s.progress.Difficulty()
	if flag != "" {
		p, err := config.ParsePreset(flag)
		if err != nil {
			return err
		}
		preset = p
		s.progress.SetDifficulty(p)
	}
	config.ApplyPreset(&s.cfg, preset)
	return nil
}

// prepare applies the current difficulty to a reloaded config.
func (s *session) prepare(cfg config.FlappyConfig) config.FlappyConfig {
	config.ApplyPreset(&cfg, s.progress.Difficulty())
	return cfg
}

func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: closing database: %v\n", err)
		}
	}
}
