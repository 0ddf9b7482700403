package asteroids

import "github.com/1GJones/asteroid-game/internal/core"

// Projectile is a shot. It flies straight and dies once it leaves the screen.
type Projectile struct {
	body Body
}

// NewProjectile creates a projectile. Radius must be positive.
func NewProjectile(pos, vel core.Vec2, radius float64) (*Projectile, error) {
	b, err := newBody(pos, vel, radius, core.ColorBrightYellow)
	if err != nil {
		return nil, err
	}
	return &Projectile{body: b}, nil
}

func (p *Projectile) Body() *Body { return &p.body }

func (p *Projectile) Roles() Role {
	return RoleUpdatable | RoleDrawable | RoleProjectile
}

// Update moves the projectile. Projectiles never wrap: a position strictly
// outside the screen on either axis kills it.
func (p *Projectile) Update(ctx *TickContext) {
	p.body.translate(ctx.DT)
	pos := p.body.Pos
	if pos.X < 0 || pos.X > ctx.Bounds.X || pos.Y < 0 || pos.Y > ctx.Bounds.Y {
		p.body.Kill()
	}
}

func (p *Projectile) Draw(c core.Canvas) {
	c.Circle(p.body.Pos, p.body.Radius, p.body.Color)
}
