package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/1GJones/asteroid-game/internal/core"
)

// Game is what the terminal shell drives.
// StepDT receives the wall-clock seconds since the previous tick.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig) error
	StepDT(input core.InputFrame, dt float64) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// gameOverLinger is how long the final frame stays up before the program exits.
const gameOverLinger = 1500 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	mapper    *KeyMapper
	keys      KeyMap
	held      *HeldKeys
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	lastTick  time.Time
	overAt    time.Time
	err       error
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a game that has already been reset.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:    cfg,
		mapper:    NewKeyMapper(keys),
		keys:      keys,
		held:      NewHeldKeys(DefaultHoldWindow),
		help:      help.New(),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := m.mapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events.
// The world is scaled to the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		if now.Sub(m.overAt) >= gameOverLinger {
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	// tea.Tick only schedules the next tick after this one is handled, so
	// ticks arrive later than the configured rate.
	dt := m.config.TickSeconds()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.StepDT(m.held.Frame(now), dt)
	m.gameState = result.State

	if result.Err != nil {
		m.err = result.Err
		m.logger.Error("game halted", "err", result.Err)
		return m, tea.Quit
	}
	if m.gameState.GameOver {
		m.overAt = now
		m.held.Release()
		m.logger.Info("game over", "tick", m.gameState.Tick)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the error that halted the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run resets the game and runs it until game over or quit.
// It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return game.State(), nil
	}
	return m.State(), m.Err()
}
