package asteroids

import (
	"fmt"
	"math/rand"

	"github.com/1GJones/asteroid-game/internal/core"
)

// FieldSpec describes the initial asteroid field.
type FieldSpec struct {
	Count       int
	SafeZone    float64 // No asteroid spawns within this distance of the screen center
	MinRadius   int
	MaxRadius   int
	MaxSpeed    float64 // Per-axis bound of the initial velocity
	MaxAttempts int     // Position samples allowed per asteroid
}

// Populate creates spec.Count asteroids at uniformly random positions farther
// than spec.SafeZone from the screen center.
//
// Positions are found by rejection sampling, capped at spec.MaxAttempts per
// asteroid. A safe zone that reaches the screen corners can never be
// satisfied and fails immediately.
func Populate(rng *rand.Rand, spec FieldSpec, bounds core.Vec2) ([]*Asteroid, error) {
	// The center's length equals the center-to-corner distance.
	center := bounds.Scale(0.5)

	switch {
	case spec.Count < 0:
		return nil, fmt.Errorf("%w: count %d", ErrInvalidSpawnConfiguration, spec.Count)
	case spec.MinRadius <= 0 || spec.MaxRadius < spec.MinRadius:
		return nil, fmt.Errorf("%w: radius range [%d, %d]", ErrInvalidSpawnConfiguration, spec.MinRadius, spec.MaxRadius)
	case spec.SafeZone >= center.Len():
		return nil, fmt.Errorf("%w: safe zone %g covers the %gx%g screen",
			ErrInvalidSpawnConfiguration, spec.SafeZone, bounds.X, bounds.Y)
	case spec.MaxAttempts <= 0 && spec.Count > 0:
		return nil, fmt.Errorf("%w: no spawn attempts allowed", ErrInvalidSpawnConfiguration)
	}

	field := make([]*Asteroid, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		pos, ok := samplePosition(rng, bounds, center, spec)
		if !ok {
			return nil, fmt.Errorf("%w: asteroid %d not placed after %d attempts",
				ErrInvalidSpawnConfiguration, i, spec.MaxAttempts)
		}

		radius := spec.MinRadius + rng.Intn(spec.MaxRadius-spec.MinRadius+1)
		vel := core.V(
			(rng.Float64()*2-1)*spec.MaxSpeed,
			(rng.Float64()*2-1)*spec.MaxSpeed,
		)

		a, err := NewAsteroid(pos, vel, float64(radius))
		if err != nil {
			return nil, err
		}
		field = append(field, a)
	}
	return field, nil
}

func samplePosition(rng *rand.Rand, bounds, center core.Vec2, spec FieldSpec) (core.Vec2, bool) {
	for range spec.MaxAttempts {
		p := core.V(rng.Float64()*bounds.X, rng.Float64()*bounds.Y)
		if p.Dist(center) > spec.SafeZone {
			return p, true
		}
	}
	return core.Vec2{}, false
}
