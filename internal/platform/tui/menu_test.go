package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/hearts"
	"github.com/vovakirdan/tui-flappy/internal/progress"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func newTestProgress() *progress.Manager {
	return progress.New(hearts.NewMemoryPrefs(), config.DefaultFlappyConfig().Hearts, nil, log.New(io.Discard))
}

func TestMenuCyclesDifficulty(t *testing.T) {
	pm := newTestProgress()
	m := NewMenuModel(pm, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if pm.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %v, expected hard", pm.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if pm.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() should wrap to easy, got %v", pm.Difficulty())
	}

	if !strings.Contains(m.View(), "Difficulty: < easy >") {
		t.Error("menu should show the selected difficulty")
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		expected MenuChoice
	}{
		{"play", 0, MenuPlay},
		{"scores", 2, MenuScores},
		{"quit", 3, MenuQuit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(newTestProgress(), 80, 24)
			for i := 0; i < tc.downs; i++ {
				next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
				m = next.(MenuModel)
			}
			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			m = next.(MenuModel)
			if m.Choice() != tc.expected {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tc.expected)
			}
			if cmd == nil {
				t.Error("selecting should quit the menu program")
			}
		})
	}
}

func TestMenuRefreshReconciles(t *testing.T) {
	pm := newTestProgress()
	pm.SetLives(1)
	m := NewMenuModel(pm, 80, 24)

	_, cmd := m.Update(menuRefreshMsg(time.Now()))
	if cmd == nil {
		t.Error("refresh should schedule the next refresh")
	}
	if !strings.Contains(m.View(), "next ♥") {
		t.Error("menu should show the heart countdown")
	}
}

type fakeScores struct {
	top    []storage.ScoreEntry
	recent []storage.ScoreEntry
	err    error
}

func (f fakeScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.top, f.err
}

func (f fakeScores) RecentScores(string, int) ([]storage.ScoreEntry, error) {
	return f.recent, f.err
}

func (f fakeScores) Summarize(string) (storage.Summary, error) {
	return storage.Summary{Runs: len(f.top), BestScore: 9, TotalCoins: 4}, f.err
}

func TestScoreboardViews(t *testing.T) {
	src := fakeScores{
		top:    []storage.ScoreEntry{{Score: 9, Coins: 3}, {Score: 2, Coins: 1}},
		recent: []storage.ScoreEntry{{Score: 2, Coins: 1}},
	}
	m := NewScoreboardModel(src, 80, 30)

	if len(m.scores) != 2 || m.scores[0].Score != 9 {
		t.Fatalf("top view loaded %+v", m.scores)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("default view should be the high scores")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 {
		t.Errorf("recent view loaded %d entries, expected 1", len(m.scores))
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("tab should switch to recent runs")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m = NewScoreboardModel(fakeScores{err: errors.New("locked")}, 80, 30)
	if !strings.Contains(m.View(), "locked") {
		t.Error("scoreboard should surface load errors")
	}
}
