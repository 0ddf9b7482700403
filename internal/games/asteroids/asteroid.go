package asteroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/1GJones/asteroid-game/internal/core"
)

// SplitRules controls asteroid fragmentation.
type SplitRules struct {
	MinRadius   float64 // Asteroids at or below this radius are destroyed outright
	AngleMin    float64 // Degrees
	AngleMax    float64 // Degrees
	SpeedFactor float64
}

// Asteroid is a wrapping rock that splits when shot.
type Asteroid struct {
	body Body
}

// NewAsteroid creates an asteroid. Radius must be positive.
func NewAsteroid(pos, vel core.Vec2, radius float64) (*Asteroid, error) {
	b, err := newBody(pos, vel, radius, core.ColorWhite)
	if err != nil {
		return nil, err
	}
	return &Asteroid{body: b}, nil
}

func (a *Asteroid) Body() *Body { return &a.body }

func (a *Asteroid) Roles() Role {
	return RoleUpdatable | RoleDrawable | RoleAsteroid
}

// Update moves the asteroid and wraps it around the screen edges.
func (a *Asteroid) Update(ctx *TickContext) {
	a.body.translate(ctx.DT)
	a.body.wrap(ctx.Bounds)
}

func (a *Asteroid) Draw(c core.Canvas) {
	c.Circle(a.body.Pos, a.body.Radius, a.body.Color)
}

// Split destroys the asteroid and returns its fragments.
// Asteroids no larger than rules.MinRadius leave no fragments. Larger ones
// leave two children of half the radius (rounded down) whose velocities are
// the parent's turned by +θ and -θ, θ drawn once from the angle range.
func (a *Asteroid) Split(rng *rand.Rand, rules SplitRules) ([]*Asteroid, error) {
	if !a.body.alive {
		return nil, fmt.Errorf("%w: split of dead asteroid %d", ErrContractViolation, a.body.id)
	}
	a.body.Kill()

	if a.body.Radius <= rules.MinRadius {
		return nil, nil
	}

	theta := rules.AngleMin + rng.Float64()*(rules.AngleMax-rules.AngleMin)
	radius := math.Floor(a.body.Radius / 2)

	children := make([]*Asteroid, 0, 2)
	for _, deg := range []float64{theta, -theta} {
		vel := a.body.Vel.Rotate(deg).Scale(rules.SpeedFactor)
		child, err := NewAsteroid(a.body.Pos, vel, radius)
		if err != nil {
			return nil, fmt.Errorf("split asteroid %d: %w", a.body.id, err)
		}
		children = append(children, child)
	}
	return children, nil
}
