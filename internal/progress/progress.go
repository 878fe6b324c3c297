// Package progress keeps the player's persistent state between runs: lives,
// best score, coin total and the selected difficulty.
package progress

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/hearts"
)

// GameID is the key runs are recorded under.
const GameID = "flappy"

// Persisted keys.
const (
	KeyLives      = "progress.lives"
	KeyBestScore  = "progress.best_score"
	KeyCoins      = "progress.coins"
	KeyDifficulty = "progress.difficulty"
)

// RunRecorder stores finished runs. storage.Store implements it.
type RunRecorder interface {
	SaveScore(gameID string, score, coins int) (int64, error)
}

// Manager owns the progress fields and the heart timer behind them.
// Lives never exceed the maximum, and the timer runs exactly when lives are
// below it.
type Manager struct {
	prefs    hearts.Prefs
	regen    *hearts.Regenerator
	recorder RunRecorder
	logger   *log.Logger

	lives      int
	best       int
	coins      int
	difficulty config.DifficultyPreset
}

// New creates a manager over prefs and loads the stored values.
// A nil clock means the system clock and a nil logger means log.Default().
func New(prefs hearts.Prefs, hc config.HeartsConfig, clock hearts.Clock, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		prefs:  prefs,
		regen:  hearts.NewRegenerator(prefs, clock, hc.MaxLives, hc.RegenInterval(), logger),
		logger: logger,
	}
	m.Load()
	return m
}

// SetRecorder attaches a run history store. Nil detaches it.
func (m *Manager) SetRecorder(r RunRecorder) {
	m.recorder = r
}

// Load reads every field from prefs. Missing lives mean a fresh player with
// full hearts.
func (m *Manager) Load() {
	limit := m.regen.MaxHearts()
	m.lives = clampLives(m.prefs.GetInt(KeyLives, limit), limit)
	m.best = m.prefs.GetInt(KeyBestScore, 0)
	m.coins = m.prefs.GetInt(KeyCoins, 0)
	m.difficulty = config.PresetAt(m.prefs.GetInt(KeyDifficulty, config.DifficultyNormal.Index()))
}

// Save writes every field to prefs.
func (m *Manager) Save() {
	m.prefs.PutInt(KeyLives, m.lives)
	m.prefs.PutInt(KeyBestScore, m.best)
	m.prefs.PutInt(KeyCoins, m.coins)
	m.prefs.PutInt(KeyDifficulty, m.difficulty.Index())
}

// Lives returns the current heart count.
func (m *Manager) Lives() int {
	return m.lives
}

// MaxLives returns the heart cap.
func (m *Manager) MaxLives() int {
	return m.regen.MaxHearts()
}

// SetLives stores n clamped to [0, MaxLives] and keeps the timer consistent.
func (m *Manager) SetLives(n int) {
	m.lives = clampLives(n, m.regen.MaxHearts())
	m.regen.RecordHearts(m.lives)
	m.Save()
}

// LoseLife spends one heart. It returns false when none were left.
// The first loss below the maximum arms the timer; later losses keep the
// running timer and only record the new count.
func (m *Manager) LoseLife() bool {
	if m.lives <= 0 {
		return false
	}
	m.lives--
	m.regen.RecordHearts(m.lives)
	m.Save()
	m.logger.Info("life lost", "lives", m.lives)
	return true
}

// Reconcile applies the hearts regenerated since the last call. Call it at
// session start and whenever the player returns.
func (m *Manager) Reconcile() int {
	before := m.lives
	m.lives = clampLives(m.regen.Update(m.lives), m.regen.MaxHearts())
	if m.lives != before {
		m.Save()
	}
	return m.lives
}

// CanPlay reports whether a heart is available.
func (m *Manager) CanPlay() bool {
	return m.lives > 0
}

// NextHeartIn returns the time until the next heart, 0 when full.
func (m *Manager) NextHeartIn() time.Duration {
	return m.regen.TimeUntilNext(m.lives)
}

// Best returns the best score.
func (m *Manager) Best() int {
	return m.best
}

// Coins returns the lifetime coin total.
func (m *Manager) Coins() int {
	return m.coins
}

// RecordRun folds a finished run into the totals and the history.
// It reports whether the run set a new best.
func (m *Manager) RecordRun(score, coins int) (bool, error) {
	newBest := score > m.best
	if newBest {
		m.best = score
	}
	m.coins += coins
	m.Save()

	if m.recorder != nil {
		if _, err := m.recorder.SaveScore(GameID, score, coins); err != nil {
			return newBest, fmt.Errorf("progress: cannot record run: %w", err)
		}
	}
	m.logger.Debug("run recorded", "score", score, "coins", coins, "best", m.best)
	return newBest, nil
}

// Difficulty returns the selected preset.
func (m *Manager) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// SetDifficulty selects and stores a preset.
func (m *Manager) SetDifficulty(p config.DifficultyPreset) {
	m.difficulty = p
	m.Save()
}

func clampLives(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
