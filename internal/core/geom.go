// Package core provides the shared types of the asteroids runtime: vector math,
// input frames, the cell screen and the canvas games draw into.
// It has no external dependencies (especially no Bubble Tea or Ebiten) so game
// logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. Screen y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rotate returns v rotated by deg degrees.
// Positive angles turn clockwise on screen because y points down.
func (v Vec2) Rotate(deg float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Heading returns the unit vector for a rotation in degrees.
// Rotation 0 points up the screen.
func Heading(deg float64) Vec2 {
	return Vec2{0, -1}.Rotate(deg)
}

// Circle is a circular body used for collision tests.
type Circle struct {
	Center Vec2
	Radius float64
}

// Collides reports whether two circles overlap.
// The comparison is strict: tangent circles do not collide.
func Collides(a, b Circle) bool {
	return a.Center.Dist(b.Center) < a.Radius+b.Radius
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
