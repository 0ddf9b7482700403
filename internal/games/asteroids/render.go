package asteroids

import (
	"fmt"

	"github.com/1GJones/asteroid-game/internal/core"
)

// Render draws the world scaled onto a terminal screen, plus a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	w, h := g.WorldSize()
	g.Draw(core.NewScreenCanvas(dst, w, h))

	st := g.State()
	hud := fmt.Sprintf(" ASTEROIDS  rocks %d  shots %d  t %.1fs ",
		st.Asteroids, g.sim.World().Count(RoleProjectile), g.sim.Elapsed())
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	if g.err != nil {
		g.drawCenteredMessage(dst, "HALTED", g.err.Error(), core.ColorBrightRed)
		return
	}
	if st.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", "Press Q to quit", core.ColorBrightRed)
		return
	}
	if st.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// Draw draws every drawable entity onto c.
func (g *Game) Draw(c core.Canvas) {
	if g.sim == nil {
		return
	}
	g.sim.Draw(c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
