package ecs

import (
	"image/color"

	"github.com/plus3/shapewars/vec"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA converts c to a fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Transform holds an entity's placement. Angle is in degrees and only affects rendering.
type Transform struct {
	Position vec.Vector2
	Velocity vec.Vector2
	Angle    float64
}

// Shape describes how an entity is drawn: a regular polygon with the given vertex count.
type Shape struct {
	Radius           float64
	Vertices         int
	Fill             RGB
	Outline          RGB
	OutlineThickness float64
}

// Collision is a circular bounding volume centered on the entity's position.
type Collision struct {
	Radius float64
}

// Input is the current key-hold state for an entity driven by the player.
type Input struct {
	Up, Down, Left, Right bool
}

// Score is the value awarded for an entity.
type Score struct {
	Value int
}

// Lifespan counts frames an entity has left to live.
type Lifespan struct {
	Total     int
	Remaining int
}
