// Package vec provides the 2D vector math used by entity transforms and shape geometry.
package vec

import "math"

// Vector2 is a 2D float vector with value semantics.
type Vector2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between v and o.
func (v Vector2) Dist(o Vector2) float64 {
	return v.Sub(o).Length()
}

// Rotate returns v rotated counter-clockwise by deg degrees around the origin.
func (v Vector2) Rotate(deg float64) Vector2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
