// Package tui provides the Bubble Tea host for the flappy game.
// It handles the terminal UI loop, input mapping, the HUD and the menus.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxDelta caps one step so a stalled terminal cannot launch the bird
// through an obstacle.
const maxDelta = 0.1

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, falling back to the
// nominal step on the first tick and capping long stalls.
func frameDelta(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return nominal
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

// ConfigMsg carries a reloaded configuration from the watcher.
type ConfigMsg config.FlappyConfig

// waitForConfig blocks on the watcher and delivers the next reload.
// It returns nil when no watcher is attached.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-w.Configs
		if !ok {
			return nil
		}
		return ConfigMsg(cfg)
	}
}
