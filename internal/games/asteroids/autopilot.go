package asteroids

import (
	"math"

	"github.com/1GJones/asteroid-game/internal/core"
)

// Autopilot produces scripted input for headless runs.
// It turns toward the nearest asteroid, fires whenever the weapon is ready,
// and backs away from asteroids that get close.
type Autopilot struct {
	// Margin is the clearance, beyond both radii, at which the ship retreats.
	Margin float64
}

// Input returns the controls for the simulation's next tick.
func (a Autopilot) Input(s *Simulation) core.InputFrame {
	in := core.NewInputFrame()
	p := s.Player()
	pos := p.Body().Pos

	var target *Body
	best := math.Inf(1)
	for _, e := range s.World().Members(RoleAsteroid) {
		b := e.Body()
		if d := b.Pos.Dist(pos) - b.Radius; d < best {
			best = d
			target = b
		}
	}
	if target == nil {
		return in
	}

	// Signed angle from the heading to the target, in (-180, 180].
	to := target.Pos.Sub(pos)
	want := math.Atan2(to.X, -to.Y) * 180 / math.Pi
	diff := math.Mod(want-p.Rotation()+540, 360) - 180
	switch {
	case diff > 3:
		in.Set(core.ActionRotateRight)
	case diff < -3:
		in.Set(core.ActionRotateLeft)
	}

	if best-p.Body().Radius < a.Margin {
		in.Set(core.ActionReverse)
	}
	if p.CanShoot() {
		in.Set(core.ActionFire)
	}
	return in
}
