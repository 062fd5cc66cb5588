// Package config loads the whitespace-delimited game configuration file.
//
// The file is a sequence of records. Each record starts with a keyword followed by a
// fixed number of fields:
//
//	Window W H FL FS
//	Font   F S R G B
//	Player SR CR S FR FG FB OR OG OB OT V
//	Enemy  SR CR SMIN SMAX OR OG OB OT VMIN VMAX L SI
//	Bullet SR CR S FR FG FB OR OG OB OT V L
//
// Tokens that are not record keywords are ignored. Window, Player and Enemy records
// are required; Font and Bullet are optional.
package config

import "github.com/plus3/shapewars/ecs"

// Config is the complete game configuration.
type Config struct {
	Window Window
	Font   *Font
	Player Player
	Enemy  Enemy
	Bullet *Bullet
}

// Window configures the rendering surface.
type Window struct {
	Width          int
	Height         int
	FramerateLimit int
	Fullscreen     bool
}

// Font configures the HUD font.
type Font struct {
	Path  string
	Size  int
	Color ecs.RGB
}

// Player configures the player entity.
type Player struct {
	ShapeRadius      float64
	CollisionRadius  float64
	Speed            float64
	Fill             ecs.RGB
	Outline          ecs.RGB
	OutlineThickness float64
	Vertices         int
}

// Enemy configures spawned enemies. Lifespan and SpawnInterval are in frames.
type Enemy struct {
	ShapeRadius      float64
	CollisionRadius  float64
	MinSpeed         float64
	MaxSpeed         float64
	Outline          ecs.RGB
	OutlineThickness float64
	MinVertices      int
	MaxVertices      int
	Lifespan         int
	SpawnInterval    int
}

// Bullet configures projectiles.
type Bullet struct {
	ShapeRadius      float64
	CollisionRadius  float64
	Speed            float64
	Fill             ecs.RGB
	Outline          ecs.RGB
	OutlineThickness float64
	Vertices         int
	Lifespan         int
}
