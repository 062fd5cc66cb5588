package game

import (
	"math"

	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/vec"
)

// SpawnerSystem adds an enemy every Enemy.SpawnInterval frames.
type SpawnerSystem struct {
	engine *Engine
}

func (s *SpawnerSystem) Execute(frame *ecs.UpdateFrame) {
	e := s.engine
	if frame.Frame-e.lastEnemySpawnFrame < int64(e.cfg.Enemy.SpawnInterval) {
		return
	}
	s.spawnEnemy(frame)
}

func (s *SpawnerSystem) spawnEnemy(frame *ecs.UpdateFrame) {
	e := s.engine
	cfg := e.cfg.Enemy
	rng := e.rng

	vertices := rng.IntRange(cfg.MinVertices, cfg.MaxVertices)
	w, h := e.bounds()
	r := cfg.CollisionRadius
	position := vec.New(
		rng.Float64Range(r, w-r),
		rng.Float64Range(r, h-r),
	)
	fill := ecs.RGB{
		R: uint8(rng.IntRange(0, 255)),
		G: uint8(rng.IntRange(0, 255)),
		B: uint8(rng.IntRange(0, 255)),
	}
	speed := rng.Float64Range(cfg.MinSpeed, cfg.MaxSpeed)

	enemy := frame.Entities.AddEntity(TagEnemy)
	enemy.Transform = &ecs.Transform{
		Position: position,
		Velocity: spawnVelocity(rng, speed),
		Angle:    initialAngle(vertices),
	}
	enemy.Shape = &ecs.Shape{
		Radius:           cfg.ShapeRadius,
		Vertices:         vertices,
		Fill:             fill,
		Outline:          cfg.Outline,
		OutlineThickness: cfg.OutlineThickness,
	}
	enemy.Collision = &ecs.Collision{Radius: r}
	enemy.Score = &ecs.Score{Value: vertices * 100}
	enemy.Lifespan = &ecs.Lifespan{Total: cfg.Lifespan, Remaining: cfg.Lifespan}

	e.lastEnemySpawnFrame = frame.Frame
	e.logger.Debug("enemy spawned",
		"id", enemy.Id(),
		"frame", frame.Frame,
		"vertices", vertices,
		"x", position.X,
		"y", position.Y,
	)
}

// spawnVelocity returns a velocity of magnitude speed. Each axis independently
// points negative, nowhere or positive; when both axes come up empty the enemy moves
// diagonally down-right instead of standing still.
func spawnVelocity(rng Random, speed float64) vec.Vector2 {
	sx := float64(rng.IntRange(-1, 1))
	sy := float64(rng.IntRange(-1, 1))
	diagonal := speed / math.Sqrt2

	switch {
	case sx == 0 && sy == 0:
		return vec.New(diagonal, diagonal)
	case sx == 0 || sy == 0:
		return vec.New(sx*speed, sy*speed)
	default:
		return vec.New(sx*diagonal, sy*diagonal)
	}
}
