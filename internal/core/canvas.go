package core

import "math"

// Glyphs used when projecting shapes onto a Screen.
const (
	DotGlyph    = '•' // Circles smaller than one cell
	RingGlyph   = 'o' // Circle outlines
	StrokeGlyph = '*' // Polygon edges
)

// Canvas is a draw target addressed in world coordinates.
// Shells implement it over their own surface (terminal cells, window pixels).
type Canvas interface {
	// Circle draws the outline of a circle.
	Circle(center Vec2, radius float64, c Color)

	// Polygon draws a closed outline through the given points.
	Polygon(points []Vec2, c Color)
}

// ScreenCanvas projects a world of worldW x worldH units onto a Screen.
// Each axis is scaled independently so the whole world fits the screen.
type ScreenCanvas struct {
	dst    *Screen
	scaleX float64
	scaleY float64
}

// NewScreenCanvas creates a canvas that maps world units onto dst.
func NewScreenCanvas(dst *Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{
		dst:    dst,
		scaleX: float64(dst.Width()) / worldW,
		scaleY: float64(dst.Height()) / worldH,
	}
}

// Project converts a world position to a screen cell.
func (c *ScreenCanvas) Project(p Vec2) (int, int) {
	return int(math.Floor(p.X * c.scaleX)), int(math.Floor(p.Y * c.scaleY))
}

// Circle draws a ring of cells, or a single dot when the circle is smaller
// than a cell.
func (c *ScreenCanvas) Circle(center Vec2, radius float64, col Color) {
	rx := radius * c.scaleX
	ry := radius * c.scaleY
	if rx < 1 && ry < 1 {
		x, y := c.Project(center)
		c.dst.SetColored(x, y, DotGlyph, col)
		return
	}

	// Sample enough points that neighbouring samples land in adjacent cells.
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry) * 2))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		p := Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
		x, y := c.Project(p)
		c.dst.SetColored(x, y, RingGlyph, col)
	}
}

// Polygon draws straight edges between consecutive points and closes the shape.
func (c *ScreenCanvas) Polygon(points []Vec2, col Color) {
	if len(points) == 0 {
		return
	}
	for i := range points {
		x0, y0 := c.Project(points[i])
		x1, y1 := c.Project(points[(i+1)%len(points)])
		c.line(x0, y0, x1, y1, col)
	}
}

// line rasterizes a segment with Bresenham's algorithm.
func (c *ScreenCanvas) line(x0, y0, x1, y1 int, col Color) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.dst.SetColored(x0, y0, StrokeGlyph, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
