package asteroids

import (
	"fmt"
	"math"

	"github.com/1GJones/asteroid-game/internal/core"
)

// PlayerSpec holds the ship and weapon parameters.
type PlayerSpec struct {
	Radius     float64
	TurnSpeed  float64 // Degrees per second
	MoveSpeed  float64 // Units per second
	ShotRadius float64
	ShotSpeed  float64
	Cooldown   float64 // Seconds between shots
}

// Player is the ship. It moves along its heading and does not wrap.
type Player struct {
	body     Body
	spec     PlayerSpec
	rotation float64 // Degrees, 0 points up
	cooldown float64
}

// NewPlayer creates a ship at pos facing up.
func NewPlayer(pos core.Vec2, spec PlayerSpec) (*Player, error) {
	b, err := newBody(pos, core.Vec2{}, spec.Radius, core.ColorBrightWhite)
	if err != nil {
		return nil, err
	}
	return &Player{body: b, spec: spec}, nil
}

func (p *Player) Body() *Body { return &p.body }

func (p *Player) Roles() Role {
	return RoleUpdatable | RoleDrawable
}

// Rotation returns the heading in degrees.
func (p *Player) Rotation() float64 { return p.rotation }

// Cooldown returns the seconds left until the next shot.
func (p *Player) Cooldown() float64 { return p.cooldown }

// Update applies held controls. Opposite controls held together cancel out.
func (p *Player) Update(ctx *TickContext) {
	if ctx.Input.Has(core.ActionRotateLeft) {
		p.rotation -= p.spec.TurnSpeed * ctx.DT
	}
	if ctx.Input.Has(core.ActionRotateRight) {
		p.rotation += p.spec.TurnSpeed * ctx.DT
	}

	step := core.Heading(p.rotation).Scale(p.spec.MoveSpeed * ctx.DT)
	if ctx.Input.Has(core.ActionThrust) {
		p.body.Pos = p.body.Pos.Add(step)
	}
	if ctx.Input.Has(core.ActionReverse) {
		p.body.Pos = p.body.Pos.Sub(step)
	}

	p.cooldown = math.Max(0, p.cooldown-ctx.DT)
}

// CanShoot reports whether the weapon is ready.
func (p *Player) CanShoot() bool {
	return p.cooldown <= 0
}

// Shoot fires a projectile from the ship's position along its heading and
// restarts the cooldown. Calling it while CanShoot is false is an error and
// fires nothing.
func (p *Player) Shoot() (*Projectile, error) {
	if !p.CanShoot() {
		return nil, fmt.Errorf("%w: shoot with %.3fs cooldown left", ErrContractViolation, p.cooldown)
	}
	vel := core.Heading(p.rotation).Scale(p.spec.ShotSpeed)
	shot, err := NewProjectile(p.body.Pos, vel, p.spec.ShotRadius)
	if err != nil {
		return nil, err
	}
	p.cooldown = p.spec.Cooldown
	return shot, nil
}

// Triangle returns the ship outline: the tip followed by the two base corners.
func (p *Player) Triangle() [3]core.Vec2 {
	r := p.body.Radius
	forward := core.Heading(p.rotation)
	right := core.Heading(p.rotation + 90).Scale(r / 1.5)

	tip := p.body.Pos.Add(forward.Scale(r))
	base := p.body.Pos.Sub(forward.Scale(r))
	return [3]core.Vec2{tip, base.Sub(right), base.Add(right)}
}

func (p *Player) Draw(c core.Canvas) {
	tri := p.Triangle()
	c.Polygon(tri[:], p.body.Color)
}
