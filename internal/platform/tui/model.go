package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

// Lines kept free below the board for the help bar.
const (
	shortHelpLines = 1
	fullHelpLines  = 4
)

// ShareFunc receives the share text once when a game ends.
type ShareFunc func(text string)

// Model is the Bubble Tea model for a 2048 session. It owns the session
// exclusively; every key and mouse message is applied inside Update, so a
// move always runs to completion before the next input is seen.
type Model struct {
	session  *game2048.Session
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	share    ShareFunc
	layout   layout
	quitting bool
}

// NewModel creates a model with a freshly seeded session.
// logger and share may be nil.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger, share ShareFunc) Model {
	if cfg.ShareLink == "" {
		cfg.ShareLink = game2048.DefaultShareLink
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session:  game2048.NewSession(game2048.NewSeededSpawner(cfg.Seed)),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(nil),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		share:    share,
	}
	m.help.Width = cfg.ScreenW
	m.relayout()
	return m
}

// WithRenderer returns a copy of the model drawing with r.
func (m Model) WithRenderer(r *Renderer) Model {
	m.renderer = r
	return m
}

// Session returns the session owned by the model.
func (m Model) Session() *game2048.Session {
	return m.session
}

// Init implements tea.Model. The game is purely event driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleAction dispatches a semantic action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()

	case core.ActionRestart:
		m.logger.Info("new game", "previous_score", m.session.Score(), "moves", m.session.Moves())
		m.session.Restart()

	default:
		if dir, ok := action.Direction(); ok {
			m.move(dir)
		}
	}

	return m, nil
}

// move applies one directional command to the session.
func (m Model) move(dir game2048.Direction) {
	out := m.session.Apply(dir)
	m.logger.Debug("move", "dir", dir, "outcome", out, "score", m.session.Score())

	if out != game2048.OutcomeGameOver {
		return
	}

	text := game2048.ShareText(m.session.Score(), m.config.ShareLink)
	m.logger.Info("game over",
		"score", m.session.Score(),
		"max_tile", m.session.Grid().MaxTile(),
		"moves", m.session.Moves(),
	)
	if m.share != nil {
		m.share(text)
	}
}

// handleMouse turns left clicks on the direction buttons into moves.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if action, ok := m.layout.buttonAt(msg.X, msg.Y); ok {
		return m.handleAction(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout resizes the screen buffer and recomputes positions, leaving room
// for the help bar.
func (m *Model) relayout() {
	reserved := shortHelpLines
	if m.help.ShowAll {
		reserved = fullHelpLines
	}
	h := core.Max(m.config.ScreenH-reserved, 0)
	m.screen.Resize(m.config.ScreenW, h)
	m.layout = newLayout(m.config.ScreenW, h)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status, share string
	if m.session.GameOver() {
		status = fmt.Sprintf("Game over! Final score: %d", m.session.Score())
		share = game2048.ShareText(m.session.Score(), m.config.ShareLink)
	}

	drawGame(m.screen, m.layout, m.session, status, share)
	return m.renderer.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program and blocks until the player quits
// or ctx is cancelled.
func Run(ctx context.Context, cfg core.RuntimeConfig, logger *log.Logger, share ShareFunc) error {
	model := NewModel(cfg, logger, share)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the direction buttons
	)

	_, err := p.Run()
	return err
}
