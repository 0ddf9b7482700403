package asteroids

import (
	"fmt"

	"github.com/1GJones/asteroid-game/internal/core"
)

// EntityID identifies an entity inside a World.
type EntityID uint64

// InvalidEntityID is the ID of an entity that was never spawned.
const InvalidEntityID EntityID = 0

// Role tags the index sets an entity belongs to.
type Role uint8

const (
	RoleUpdatable Role = 1 << iota
	RoleDrawable
	RoleAsteroid
	RoleProjectile
)

// Has reports whether r includes every bit of o.
func (r Role) Has(o Role) bool {
	return r&o == o
}

// Body is the circular state shared by every entity.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2 // Units per second
	Radius float64
	Color  core.Color

	id    EntityID
	alive bool
}

func newBody(pos, vel core.Vec2, radius float64, color core.Color) (Body, error) {
	if radius <= 0 {
		return Body{}, fmt.Errorf("%w: radius %g", ErrContractViolation, radius)
	}
	return Body{Pos: pos, Vel: vel, Radius: radius, Color: color, alive: true}, nil
}

// ID returns the entity ID, or InvalidEntityID before the entity is spawned.
func (b *Body) ID() EntityID { return b.id }

// Alive reports whether the entity is still part of the simulation.
func (b *Body) Alive() bool { return b.alive }

// Kill marks the entity for removal at the next tick boundary.
func (b *Body) Kill() { b.alive = false }

// Circle returns the collision shape.
func (b *Body) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

func (b *Body) translate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// wrap moves each axis that left [0, extent] to the opposite edge.
// Values exactly on an edge are left alone.
func (b *Body) wrap(bounds core.Vec2) {
	b.Pos.X = wrapAxis(b.Pos.X, bounds.X)
	b.Pos.Y = wrapAxis(b.Pos.Y, bounds.Y)
}

func wrapAxis(v, extent float64) float64 {
	if v < 0 {
		return extent
	}
	if v > extent {
		return 0
	}
	return v
}

// TickContext carries the per-tick inputs every entity update may read.
type TickContext struct {
	DT     float64
	Bounds core.Vec2
	Input  core.InputFrame
}

// Entity is anything the World simulates and draws.
// Update must depend only on the entity itself and ctx.
type Entity interface {
	Body() *Body
	Roles() Role
	Update(ctx *TickContext)
	Draw(c core.Canvas)
}
