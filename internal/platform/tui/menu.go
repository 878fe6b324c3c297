package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/progress"
)

// MenuChoice is what the player picked in the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// menuItems in display order; the difficulty row cycles instead of selecting.
var menuItems = []string{"Play", "Difficulty", "Scores", "Quit"}

const difficultyRow = 1

// menuRefreshMsg redraws the countdown.
type menuRefreshMsg time.Time

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	progress *progress.Manager
	keys     MenuKeyMap
	help     help.Model
	cursor   int
	width    int
	height   int
	choice   MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(pm *progress.Manager, width, height int) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		progress: pm,
		keys:     DefaultMenuKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	m.progress.Reconcile()
	return refreshCmd()
}

func refreshCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return menuRefreshMsg(t)
	})
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case menuRefreshMsg:
		m.progress.Reconcile()
		return m, refreshCmd()
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.cycleDifficulty(-1)

	case key.Matches(msg, m.keys.Right):
		m.cycleDifficulty(1)

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case 0:
			m.choice = MenuPlay
		case difficultyRow:
			m.cycleDifficulty(1)
			return m, nil
		case 2:
			m.choice = MenuScores
		default:
			m.choice = MenuQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

// cycleDifficulty steps through the presets, wrapping around.
func (m *MenuModel) cycleDifficulty(step int) {
	n := len(config.Presets)
	i := (m.progress.Difficulty().Index() + step + n) % n
	m.progress.SetDifficulty(config.PresetAt(i))
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  F L A P P Y  "), m.width))
	b.WriteString("\n\n")

	lives, limit := m.progress.Lives(), m.progress.MaxLives()
	status := renderHearts(lives, limit)
	if c := renderCountdown(m.progress.NextHeartIn(), lives, limit); c != "" {
		status += "  " + statusStyle.Render(c)
	}
	b.WriteString(centerText(status, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(statusStyle.Render(fmt.Sprintf("best %d  coins %d", m.progress.Best(), m.progress.Coins())), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := item
		if i == difficultyRow {
			label = fmt.Sprintf("Difficulty: < %s >", m.progress.Difficulty())
		}
		line := "  " + label
		if i == m.cursor {
			line = highlightStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// RunMenu runs the menu and returns the player's choice.
func RunMenu(pm *progress.Manager, width, height int) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(pm, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuQuit, nil
	}
	return m.Choice(), nil
}
