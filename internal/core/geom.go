// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It contains no frontend dependencies (no
// Bubble Tea, no Ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in playfield coordinates (pixels).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// CirclesOverlap reports whether two circles, given by center and diameter,
// overlap. Touching circles do not count: the distance must be strictly less
// than the mean of the two diameters.
func CirclesOverlap(a Vec2, sizeA float64, b Vec2, sizeB float64) bool {
	return Dist(a, b) < (sizeA+sizeB)/2
}

// Rect represents an axis-aligned box in cell coordinates.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Polygon returns the vertices of a regular polygon with n sides inscribed
// in a circle of the given radius, rotated by angle degrees.
func Polygon(center Vec2, radius float64, n int, angle float64) []Vec2 {
	if n < 3 {
		return nil
	}
	pts := make([]Vec2, n)
	rad := angle * math.Pi / 180
	for i := range n {
		theta := rad + float64(i)*2*math.Pi/float64(n)
		pts[i] = Vec2{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return pts
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
