package asteroids

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/1GJones/asteroid-game/internal/config"
	"github.com/1GJones/asteroid-game/internal/core"
)

// State is the simulation's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules gathers every parameter of a simulation run.
type Rules struct {
	Bounds core.Vec2 // Screen extent in world units
	Player PlayerSpec
	Field  FieldSpec
	Split  SplitRules
	MaxDT  float64 // Longer frames are clamped to this
}

// RulesFromConfig converts a loaded configuration into simulation rules.
func RulesFromConfig(cfg config.AsteroidsConfig) Rules {
	return Rules{
		Bounds: core.V(cfg.Screen.Width, cfg.Screen.Height),
		Player: PlayerSpec{
			Radius:     cfg.Player.Radius,
			TurnSpeed:  cfg.Player.TurnSpeed,
			MoveSpeed:  cfg.Player.MoveSpeed,
			ShotRadius: cfg.Shots.Radius,
			ShotSpeed:  cfg.Shots.Speed,
			Cooldown:   cfg.Shots.Cooldown,
		},
		Field: FieldSpec{
			Count:       cfg.Asteroids.Count,
			SafeZone:    cfg.Asteroids.SafeZone,
			MinRadius:   cfg.Asteroids.MinRadius,
			MaxRadius:   cfg.Asteroids.MaxRadius,
			MaxSpeed:    cfg.Asteroids.MaxSpeed,
			MaxAttempts: cfg.Simulation.SpawnAttempts,
		},
		Split: SplitRules{
			MinRadius:   cfg.Asteroids.MinSplitRadius,
			AngleMin:    cfg.Asteroids.SplitAngleMin,
			AngleMax:    cfg.Asteroids.SplitAngleMax,
			SpeedFactor: cfg.Asteroids.SplitSpeedFactor,
		},
		MaxDT: cfg.Simulation.MaxFrameDT,
	}
}

// TickEvents counts what happened during one tick.
type TickEvents struct {
	ShotsFired int
	Hits       int // Projectile-asteroid collisions
	Splits     int // Hits that produced fragments
	Destroyed  int // Hits on asteroids too small to split
	Expired    int // Projectiles that left the screen
	GameOver   bool
}

// Simulation owns the world and advances it one tick at a time.
// It is not safe for concurrent use.
type Simulation struct {
	rules   Rules
	rng     *rand.Rand
	world   *World
	player  *Player
	state   State
	tick    uint64
	elapsed float64
	logger  *log.Logger
}

// NewSimulation creates a running simulation with the player at the screen
// center and a freshly populated asteroid field. The same seed always
// produces the same run for the same inputs.
func NewSimulation(rules Rules, seed int64, logger *log.Logger) (*Simulation, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Simulation{
		rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
		world:  NewWorld(),
		logger: logger,
	}

	player, err := NewPlayer(rules.Bounds.Scale(0.5), rules.Player)
	if err != nil {
		return nil, fmt.Errorf("asteroids: create player: %w", err)
	}
	s.player = player
	s.world.Spawn(player)

	field, err := Populate(s.rng, rules.Field, rules.Bounds)
	if err != nil {
		return nil, fmt.Errorf("asteroids: populate field: %w", err)
	}
	for _, a := range field {
		s.world.Spawn(a)
	}
	s.world.Flush()

	logger.Debug("simulation ready", "seed", seed, "asteroids", len(field))
	return s, nil
}

// Tick advances the simulation by dt seconds.
//
// Order within a tick: fire, update every entity, player-asteroid collisions,
// projectile-asteroid collisions, then removal of dead entities. Entities
// spawned by a hit are committed with the removal and move from the next tick.
// A tick after game over does nothing.
func (s *Simulation) Tick(dt float64, input core.InputFrame) (TickEvents, error) {
	var ev TickEvents
	if s.state == StateGameOver {
		ev.GameOver = true
		return ev, nil
	}
	if s.rules.MaxDT > 0 {
		dt = core.ClampF(dt, 0, s.rules.MaxDT)
	} else {
		dt = max(dt, 0)
	}
	s.tick++
	s.elapsed += dt

	if input.Has(core.ActionFire) && s.player.CanShoot() {
		shot, err := s.player.Shoot()
		if err != nil {
			return ev, s.fail(err)
		}
		s.world.Spawn(shot)
		s.world.Flush()
		ev.ShotsFired++
		s.logger.Debug("shot fired", "tick", s.tick, "id", shot.body.id, "rotation", s.player.rotation)
	}

	ctx := &TickContext{DT: dt, Bounds: s.rules.Bounds, Input: input}
	for _, e := range s.world.Members(RoleUpdatable) {
		e.Update(ctx)
	}

	asteroids := s.world.Members(RoleAsteroid)
	projectiles := s.world.Members(RoleProjectile)
	for _, p := range projectiles {
		if !p.Body().Alive() {
			ev.Expired++
		}
	}

	playerShape := s.player.body.Circle()
	for _, a := range asteroids {
		if core.Collides(playerShape, a.Body().Circle()) {
			s.state = StateGameOver
			ev.GameOver = true
			s.logger.Debug("player hit", "tick", s.tick, "asteroid", a.Body().ID())
			break
		}
	}

	if !ev.GameOver {
		if err := s.resolveShots(asteroids, projectiles, &ev); err != nil {
			return ev, s.fail(err)
		}
	}

	s.world.Flush()
	return ev, nil
}

// resolveShots tests every projectile against every asteroid as they stood
// after the update pass. Pairs where either side already died this tick are
// skipped, so one asteroid absorbs at most one projectile per tick.
func (s *Simulation) resolveShots(asteroids, projectiles []Entity, ev *TickEvents) error {
	for _, ae := range asteroids {
		a := ae.(*Asteroid)
		for _, p := range projectiles {
			if !a.body.alive || !p.Body().Alive() {
				continue
			}
			if !core.Collides(a.body.Circle(), p.Body().Circle()) {
				continue
			}

			p.Body().Kill()
			children, err := a.Split(s.rng, s.rules.Split)
			if err != nil {
				return err
			}
			ev.Hits++
			if len(children) == 0 {
				ev.Destroyed++
				s.logger.Debug("asteroid destroyed", "tick", s.tick, "id", a.body.id, "radius", a.body.Radius)
				continue
			}
			ev.Splits++
			for _, c := range children {
				s.world.Spawn(c)
			}
			s.logger.Debug("asteroid split", "tick", s.tick, "id", a.body.id,
				"radius", a.body.Radius, "child_radius", children[0].body.Radius)
		}
	}
	return nil
}

func (s *Simulation) fail(err error) error {
	s.logger.Error("simulation halted", "tick", s.tick, "err", err)
	return fmt.Errorf("asteroids: tick %d: %w", s.tick, err)
}

// State returns the lifecycle state.
func (s *Simulation) State() State { return s.state }

// Elapsed returns the simulated seconds, after clamping, since the start.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Ticks returns the number of ticks run.
func (s *Simulation) Ticks() uint64 { return s.tick }

// Player returns the ship.
func (s *Simulation) Player() *Player { return s.player }

// World returns the entity registry.
func (s *Simulation) World() *World { return s.world }

// Rules returns the rules the simulation was created with.
func (s *Simulation) Rules() Rules { return s.rules }

// Draw draws every drawable entity.
func (s *Simulation) Draw(c core.Canvas) {
	for _, e := range s.world.Members(RoleDrawable) {
		e.Draw(c)
	}
}
