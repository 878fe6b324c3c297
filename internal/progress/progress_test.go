package progress

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/hearts"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeRecorder struct {
	runs [][2]int
	err  error
}

func (r *fakeRecorder) SaveScore(gameID string, score, coins int) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, [2]int{score, coins})
	return int64(len(r.runs)), nil
}

func testHearts() config.HeartsConfig {
	return config.HeartsConfig{MaxLives: 3, RegenIntervalSecs: 120}
}

func newTestManager() (*Manager, *hearts.MemoryPrefs, *fakeClock) {
	prefs := hearts.NewMemoryPrefs()
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	return New(prefs, testHearts(), clock, log.New(io.Discard)), prefs, clock
}

func TestManagerFreshPlayer(t *testing.T) {
	m, _, _ := newTestManager()

	if m.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", m.Lives())
	}
	if !m.CanPlay() {
		t.Error("fresh player should be able to play")
	}
	if m.NextHeartIn() != 0 {
		t.Errorf("NextHeartIn() = %v, expected 0 when full", m.NextHeartIn())
	}
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %v, expected normal", m.Difficulty())
	}
}

func TestManagerLoseLifeArmsTimer(t *testing.T) {
	m, prefs, clock := newTestManager()
	t0 := clock.now

	if !m.LoseLife() {
		t.Fatal("LoseLife() should succeed with hearts left")
	}
	if got := prefs.GetLong(hearts.KeyLastRefill, 0); got != t0.UnixMilli() {
		t.Errorf("timer timestamp = %d, expected %d", got, t0.UnixMilli())
	}

	// A second loss keeps the original timestamp
	clock.now = t0.Add(30 * time.Second)
	m.LoseLife()
	if got := prefs.GetLong(hearts.KeyLastRefill, 0); got != t0.UnixMilli() {
		t.Error("second loss should not restart the timer")
	}
	if got := prefs.GetInt(hearts.KeySavedHearts, -1); got != 1 {
		t.Errorf("saved hearts = %d, expected 1", got)
	}
	if m.NextHeartIn() != 90*time.Second {
		t.Errorf("NextHeartIn() = %v, expected 1m30s", m.NextHeartIn())
	}
}

func TestManagerOutOfLives(t *testing.T) {
	m, _, _ := newTestManager()
	for i := 0; i < 3; i++ {
		m.LoseLife()
	}

	if m.CanPlay() {
		t.Error("CanPlay() should be false with no lives")
	}
	if m.LoseLife() {
		t.Error("LoseLife() should fail with no lives")
	}
	if m.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", m.Lives())
	}
}

func TestManagerReconcile(t *testing.T) {
	m, prefs, clock := newTestManager()
	t0 := clock.now
	for i := 0; i < 3; i++ {
		m.LoseLife()
	}

	clock.now = t0.Add(250 * time.Second)
	if got := m.Reconcile(); got != 2 {
		t.Errorf("Reconcile() = %d, expected 2", got)
	}
	if got := prefs.GetInt(KeyLives, -1); got != 2 {
		t.Errorf("persisted lives = %d, expected 2", got)
	}

	clock.now = t0.Add(time.Hour)
	if got := m.Reconcile(); got != 3 {
		t.Errorf("Reconcile() = %d, expected 3", got)
	}
	if prefs.Has(hearts.KeyLastRefill) {
		t.Error("timer should be cleared once full")
	}
}

func TestManagerSetLivesClamps(t *testing.T) {
	m, prefs, _ := newTestManager()

	m.SetLives(10)
	if m.Lives() != 3 {
		t.Errorf("SetLives(10) left %d, expected 3", m.Lives())
	}
	if prefs.Has(hearts.KeyLastRefill) {
		t.Error("full lives should not run a timer")
	}

	m.SetLives(-2)
	if m.Lives() != 0 {
		t.Errorf("SetLives(-2) left %d, expected 0", m.Lives())
	}
	if !prefs.Has(hearts.KeyLastRefill) {
		t.Error("missing lives should run a timer")
	}
}

func TestManagerPersistsAcrossInstances(t *testing.T) {
	m, prefs, clock := newTestManager()
	m.LoseLife()
	m.SetDifficulty(config.DifficultyHard)
	if _, err := m.RecordRun(12, 4); err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	reloaded := New(prefs, testHearts(), clock, log.New(io.Discard))
	if reloaded.Lives() != 2 || reloaded.Best() != 12 || reloaded.Coins() != 4 {
		t.Errorf("reloaded lives=%d best=%d coins=%d, expected 2, 12, 4",
			reloaded.Lives(), reloaded.Best(), reloaded.Coins())
	}
	if reloaded.Difficulty() != config.DifficultyHard {
		t.Errorf("reloaded difficulty = %v, expected hard", reloaded.Difficulty())
	}
}

func TestManagerRecordRun(t *testing.T) {
	m, _, _ := newTestManager()
	rec := &fakeRecorder{}
	m.SetRecorder(rec)

	tests := []struct {
		score, coins int
		newBest      bool
		best         int
	}{
		{5, 1, true, 5},
		{3, 2, false, 5},
		{5, 0, false, 5},
		{9, 0, true, 9},
	}
	for _, tc := range tests {
		got, err := m.RecordRun(tc.score, tc.coins)
		if err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
		if got != tc.newBest {
			t.Errorf("RecordRun(%d) new best = %v, expected %v", tc.score, got, tc.newBest)
		}
		if m.Best() != tc.best {
			t.Errorf("Best() = %d, expected %d", m.Best(), tc.best)
		}
	}
	if m.Coins() != 3 {
		t.Errorf("Coins() = %d, expected 3", m.Coins())
	}
	if len(rec.runs) != 4 {
		t.Errorf("recorder saw %d runs, expected 4", len(rec.runs))
	}

	rec.err = errors.New("disk full")
	if _, err := m.RecordRun(1, 0); err == nil {
		t.Error("RecordRun() should surface recorder errors")
	}
}
