package asteroids

import (
	"testing"

	"github.com/1GJones/asteroid-game/internal/config"
	"github.com/1GJones/asteroid-game/internal/core"
)

const frame = 1.0 / 60

// emptyRules returns the default rules with no initial asteroids.
func emptyRules() Rules {
	rules := RulesFromConfig(config.DefaultAsteroidsConfig())
	rules.Field.Count = 0
	return rules
}

func newEmptySim(t *testing.T) *Simulation {
	t.Helper()
	s, err := NewSimulation(emptyRules(), 1, nil)
	if err != nil {
		t.Fatalf("NewSimulation() error: %v", err)
	}
	return s
}

func place(t *testing.T, s *Simulation, es ...Entity) {
	t.Helper()
	for _, e := range es {
		s.World().Spawn(e)
	}
	s.World().Flush()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRulesFromConfig(t *testing.T) {
	rules := RulesFromConfig(config.DefaultAsteroidsConfig())

	if rules.Bounds != core.V(800, 600) {
		t.Errorf("Bounds = %v, expected (800, 600)", rules.Bounds)
	}
	if rules.Player != defaultPlayer {
		t.Errorf("Player = %+v, expected %+v", rules.Player, defaultPlayer)
	}
	if rules.Field != defaultField {
		t.Errorf("Field = %+v, expected %+v", rules.Field, defaultField)
	}
	if rules.Split != defaultSplit {
		t.Errorf("Split = %+v, expected %+v", rules.Split, defaultSplit)
	}
	if rules.MaxDT != 0.1 {
		t.Errorf("MaxDT = %f, expected 0.1", rules.MaxDT)
	}
}

func TestNewSimulation(t *testing.T) {
	s, err := NewSimulation(RulesFromConfig(config.DefaultAsteroidsConfig()), 5, nil)
	if err != nil {
		t.Fatalf("NewSimulation() error: %v", err)
	}
	if s.World().Count(RoleAsteroid) != 15 {
		t.Errorf("asteroids = %d, expected 15", s.World().Count(RoleAsteroid))
	}
	if s.Player().Body().Pos != core.V(400, 300) {
		t.Errorf("player at %v, expected screen center", s.Player().Body().Pos)
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, expected running", s.State())
	}
}

func TestNewSimulationInvalidField(t *testing.T) {
	rules := RulesFromConfig(config.DefaultAsteroidsConfig())
	rules.Field.SafeZone = 600
	if _, err := NewSimulation(rules, 1, nil); err == nil {
		t.Error("expected error for a safe zone covering the screen")
	}
}

func TestPlayerCollisionEndsGame(t *testing.T) {
	s := newEmptySim(t)
	a, _ := NewAsteroid(core.V(400, 230), core.V(0, 0), 30)
	place(t, s, a)

	ev, err := s.Tick(frame, input())
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if !ev.GameOver || s.State() != StateGameOver {
		t.Fatalf("GameOver = %v, state %v; expected game over", ev.GameOver, s.State())
	}

	// Game over is terminal: further ticks change nothing.
	before := s.Snapshot().Hash()
	ev, err = s.Tick(frame, input(core.ActionThrust, core.ActionFire))
	if err != nil || !ev.GameOver {
		t.Errorf("Tick() after game over = %+v, %v", ev, err)
	}
	if s.Snapshot().Hash() != before {
		t.Error("simulation changed after game over")
	}
}

func TestTangentPlayerDoesNotCollide(t *testing.T) {
	s := newEmptySim(t)
	a, _ := NewAsteroid(core.V(400, 220), core.V(0, 0), 30) // 80 = 50 + 30
	place(t, s, a)

	ev, _ := s.Tick(frame, input())
	if ev.GameOver {
		t.Error("tangent asteroid should not end the game")
	}
}

func TestShotSplitsAsteroid(t *testing.T) {
	s := newEmptySim(t)
	a, _ := NewAsteroid(core.V(400, 230), core.V(0, 0), 12)
	place(t, s, a)

	var total TickEvents
	for i := range 30 {
		in := input()
		if i == 0 {
			in.Set(core.ActionFire)
		}
		ev, err := s.Tick(frame, in)
		if err != nil {
			t.Fatalf("Tick() error: %v", err)
		}
		if ev.GameOver {
			t.Fatal("unexpected game over")
		}
		total.ShotsFired += ev.ShotsFired
		total.Hits += ev.Hits
		total.Splits += ev.Splits
	}

	if total.ShotsFired != 1 || total.Hits != 1 || total.Splits != 1 {
		t.Errorf("events = %+v, expected one shot, hit and split", total)
	}
	if s.World().Count(RoleProjectile) != 0 {
		t.Errorf("projectiles = %d, expected 0", s.World().Count(RoleProjectile))
	}
	rocks := s.World().Members(RoleAsteroid)
	if len(rocks) != 2 {
		t.Fatalf("asteroids = %d, expected 2", len(rocks))
	}
	for _, r := range rocks {
		if r.Body().Radius != 6 {
			t.Errorf("fragment radius = %f, expected 6", r.Body().Radius)
		}
	}
}

func TestOneProjectilePerAsteroidPerTick(t *testing.T) {
	s := newEmptySim(t)
	a, _ := NewAsteroid(core.V(100, 100), core.V(0, 0), 40)
	p1, _ := NewProjectile(core.V(100, 100), core.V(0, 0), 5)
	p2, _ := NewProjectile(core.V(100, 100), core.V(0, 0), 5)
	place(t, s, a, p1, p2)

	ev, err := s.Tick(frame, input())
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if ev.Hits != 1 || ev.Splits != 1 {
		t.Errorf("events = %+v, expected one hit and one split", ev)
	}
	if n := s.World().Count(RoleProjectile); n != 1 {
		t.Errorf("projectiles = %d, expected 1 survivor", n)
	}
	// Net change per split is +1.
	if n := s.World().Count(RoleAsteroid); n != 2 {
		t.Errorf("asteroids = %d, expected 2", n)
	}

	// The survivor hits one fragment on the next tick.
	ev, _ = s.Tick(frame, input())
	if ev.Hits != 1 {
		t.Errorf("second tick hits = %d, expected 1", ev.Hits)
	}
	if n := s.World().Count(RoleAsteroid); n != 3 {
		t.Errorf("asteroids = %d, expected 3", n)
	}
}

func TestFragmentsMoveFromNextTick(t *testing.T) {
	s := newEmptySim(t)
	a, _ := NewAsteroid(core.V(100, 100), core.V(60, 0), 40)
	p, _ := NewProjectile(core.V(101, 100), core.V(0, 0), 5)
	place(t, s, a, p)

	s.Tick(frame, input())
	for _, r := range s.World().Members(RoleAsteroid) {
		if !near(r.Body().Pos.X, 101) {
			t.Errorf("fragment X = %f, expected 101 (parent's position after its move)", r.Body().Pos.X)
		}
	}
}

func TestExpiredProjectiles(t *testing.T) {
	s := newEmptySim(t)
	p, _ := NewProjectile(core.V(400, 2), core.V(0, -500), 5)
	place(t, s, p)

	ev, _ := s.Tick(frame, input())
	if ev.Expired != 1 {
		t.Errorf("Expired = %d, expected 1", ev.Expired)
	}
	if s.World().Count(RoleProjectile) != 0 {
		t.Error("expired projectile should be removed")
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	s := newEmptySim(t)
	shots := 0
	// 0.3s cooldown at 60 ticks/s: fire held for one second.
	for range 60 {
		ev, err := s.Tick(frame, input(core.ActionFire))
		if err != nil {
			t.Fatalf("Tick() error: %v", err)
		}
		shots += ev.ShotsFired
	}
	if shots < 3 || shots > 4 {
		t.Errorf("fired %d shots in one second, expected 3 or 4", shots)
	}
}

func TestDTClamp(t *testing.T) {
	s := newEmptySim(t)
	a, _ := NewAsteroid(core.V(100, 100), core.V(100, 0), 10)
	place(t, s, a)

	s.Tick(5, input())
	if x := a.Body().Pos.X; !near(x, 110) {
		t.Errorf("X = %f, expected 110 after a clamped step", x)
	}

	s.Tick(-1, input())
	if x := a.Body().Pos.X; !near(x, 110) {
		t.Errorf("X = %f, expected 110 after a negative step", x)
	}
}
