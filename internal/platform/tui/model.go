package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/hearts"
	"github.com/vovakirdan/tui-flappy/internal/progress"
)

// Options configures a play session.
type Options struct {
	Runtime  core.RuntimeConfig
	Progress *progress.Manager
	// Watcher delivers config reloads; nil disables hot reload.
	Watcher *config.Watcher
	// Prepare adjusts a reloaded config before it is queued, e.g. to apply
	// the selected difficulty preset.
	Prepare func(config.FlappyConfig) config.FlappyConfig
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a flappy session.
type Model struct {
	game      *flappy.Game
	screen    *core.Screen
	progress  *progress.Manager
	runtime   core.RuntimeConfig
	fixedSeed bool
	watcher   *config.Watcher
	prepare   func(config.FlappyConfig) config.FlappyConfig
	logger    *log.Logger

	keys  GameKeyMap
	help  help.Model
	input core.InputFrame
	state core.GameState

	lastTick time.Time
	lastSync time.Time
	width    int
	height   int

	runOver  bool // Result of the current run has been recorded
	locked   bool // No lives left; waiting for a heart
	newBest  bool
	notice   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	rt := opts.Runtime
	fixed := rt.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		rt.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		game:      game,
		screen:    core.NewScreen(rt.ScreenW, max(1, rt.ScreenH-2)),
		progress:  opts.Progress,
		runtime:   rt,
		fixedSeed: fixed,
		watcher:   opts.Watcher,
		prepare:   opts.Prepare,
		logger:    opts.Logger,
		keys:      DefaultGameKeyMap(),
		help:      h,
		input:     core.NewInputFrame(),
		width:     rt.ScreenW,
		height:    rt.ScreenH,
	}

	// The world is always renderable, even while locked out
	m.game.Reset(m.runtime)
	m.state = m.game.State()
	m.progress.Reconcile()
	m.locked = !m.progress.CanPlay()
	return m
}

// Init starts the tick loop and, when configured, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigMsg:
		cfg := config.FlappyConfig(msg)
		if m.prepare != nil {
			cfg = m.prepare(cfg)
		}
		m.game.SetConfig(cfg)
		m.notice = "config reloaded, applies next run"
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.notice = "saved " + path
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step with the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.runtime.FixedDelta())
	m.lastTick = now

	// Hearts run on the wall clock; reconcile about once a second
	if now.Sub(m.lastSync) >= time.Second {
		m.progress.Reconcile()
		m.lastSync = now
	}

	if m.input.Has(core.ActionRestart) && (m.state.GameOver || m.locked) {
		m.startRun()
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.locked {
		m.input.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	result := m.game.Step(m.input, dt)
	m.state = result.State

	if result.Collided() && !m.runOver {
		m.finishRun()
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// startRun begins a new run if a heart is available.
func (m *Model) startRun() {
	m.progress.Reconcile()
	if !m.progress.CanPlay() {
		m.locked = true
		return
	}
	m.locked = false
	if !m.fixedSeed {
		m.runtime.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.runtime)
	m.state = m.game.State()
	m.runOver = false
	m.newBest = false
	m.notice = ""
}

// finishRun charges a life and records the result.
func (m *Model) finishRun() {
	m.runOver = true
	m.progress.LoseLife()
	newBest, err := m.progress.RecordRun(m.state.Score, m.state.Coins)
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
	m.newBest = newBest
	m.logger.Info("run finished", "score", m.state.Score, "coins", m.state.Coins, "lives", m.progress.Lives())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	status := m.statusLine()
	gameH := max(1, m.height-lipgloss.Height(helpView)-lipgloss.Height(status))
	if m.screen.Width() != m.width || m.screen.Height() != gameH {
		m.screen.Resize(m.width, gameH)
	}

	var body string
	if m.locked {
		body = lipgloss.Place(m.width, gameH, lipgloss.Center, lipgloss.Center, m.lockedPanel())
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, status, helpView)
}

// statusLine renders lives, countdown, best score and notices.
func (m Model) statusLine() string {
	lives, limit := m.progress.Lives(), m.progress.MaxLives()
	parts := []string{renderHearts(lives, limit)}
	if c := renderCountdown(m.progress.NextHeartIn(), lives, limit); c != "" {
		parts = append(parts, statusStyle.Render(c))
	}
	parts = append(parts,
		statusStyle.Render(fmt.Sprintf("best %d", m.progress.Best())),
		statusStyle.Render(fmt.Sprintf("coins %d", m.progress.Coins())),
		statusStyle.Render(string(m.game.Config().Difficulty.Preset)),
	)
	if m.state.GameOver && m.newBest {
		parts = append(parts, noticeStyle.Render("NEW BEST!"))
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) lockedPanel() string {
	next := hearts.FormatCountdown(m.progress.NextHeartIn())
	hint := "next heart in " + next
	if m.progress.CanPlay() {
		hint = "a heart is back, press r to fly"
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("OUT OF LIVES"),
		"",
		renderHearts(m.progress.Lives(), m.progress.MaxLives()),
		hint,
	))
}

// State returns the state of the current run.
func (m Model) State() core.GameState {
	return m.state
}

// Locked reports whether play is blocked until a heart regenerates.
func (m Model) Locked() bool {
	return m.locked
}

// Run starts the Bubble Tea program for one session.
func Run(game *flappy.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
