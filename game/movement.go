package game

import (
	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/vec"
)

// MovementSystem derives the player's velocity from its input flags and advances
// every entity by its velocity.
type MovementSystem struct {
	engine *Engine
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	player := s.engine.mustPlayer()
	player.Transform.Velocity = playerVelocity(player.Input, s.engine.cfg.Player.Speed)

	for _, entity := range frame.Entities.Entities() {
		if entity.Transform == nil {
			continue
		}
		entity.Transform.Position = entity.Transform.Position.Add(entity.Transform.Velocity)
	}

	s.confinePlayer(player)
}

// playerVelocity maps held keys to a velocity. Opposing keys held together cancel
// out on their axis.
func playerVelocity(in *ecs.Input, speed float64) vec.Vector2 {
	var v vec.Vector2
	if in == nil {
		return v
	}
	if in.Up != in.Down {
		if in.Up {
			v.Y = -speed
		} else {
			v.Y = speed
		}
	}
	if in.Left != in.Right {
		if in.Left {
			v.X = -speed
		} else {
			v.X = speed
		}
	}
	return v
}

func (s *MovementSystem) confinePlayer(player *ecs.Entity) {
	if player.Collision == nil {
		return
	}
	w, h := s.engine.bounds()
	r := player.Collision.Radius
	p := &player.Transform.Position
	p.X = clamp(p.X, r, w-r)
	p.Y = clamp(p.Y, r, h-r)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}
