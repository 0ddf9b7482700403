package asteroids

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/1GJones/asteroid-game/internal/config"
	"github.com/1GJones/asteroid-game/internal/core"
)

// Game adapts a Simulation to the shells.
// Step advances by one tick of 1/TickRate seconds; StepDT takes the
// elapsed wall-clock time instead.
type Game struct {
	cfg    config.AsteroidsConfig
	logger *log.Logger

	sim       *Simulation
	dt        float64
	paused    bool
	pauseHeld bool
	err       error
	last      TickEvents
}

// New creates a game for cfg. Call Reset before stepping it.
func New(cfg config.AsteroidsConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	sim, err := NewSimulation(RulesFromConfig(g.cfg), rc.Seed, g.logger)
	if err != nil {
		return fmt.Errorf("asteroids: reset: %w", err)
	}
	g.sim = sim
	g.dt = rc.TickSeconds()
	g.paused = false
	g.pauseHeld = false
	g.err = nil
	g.last = TickEvents{}
	return nil
}

// Step advances the game by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	return g.StepDT(input, g.dt)
}

// StepDT advances the game by dt seconds. The simulation clamps dt to
// simulation.max_frame_dt.
func (g *Game) StepDT(input core.InputFrame, dt float64) core.StepResult {
	if g.sim == nil {
		return core.StepResult{Err: fmt.Errorf("%w: step before reset", ErrContractViolation)}
	}

	// Pause toggles on press, not while held
	pause := input.Has(core.ActionPause)
	if pause && !g.pauseHeld && g.sim.State() == StateRunning {
		g.paused = !g.paused
	}
	g.pauseHeld = pause

	if g.paused || g.err != nil || g.sim.State() == StateGameOver {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	ev, err := g.sim.Tick(dt, input)
	g.last = ev
	if err != nil {
		g.err = err
	}
	if ev.GameOver {
		g.logger.Debug("game over", "tick", g.sim.Ticks(), "hash", g.Snapshot().Hash())
	}
	return core.StepResult{State: g.State(), Err: g.err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Tick:      g.sim.Ticks(),
		Asteroids: g.sim.World().Count(RoleAsteroid),
		GameOver:  g.sim.State() == StateGameOver,
		Paused:    g.paused,
	}
}

// LastEvents returns what happened during the most recent tick.
func (g *Game) LastEvents() TickEvents {
	return g.last
}

// Simulation returns the running simulation, or nil before Reset.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// WorldSize returns the world extent in world units.
func (g *Game) WorldSize() (float64, float64) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
