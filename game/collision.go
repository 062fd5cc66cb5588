package game

import (
	"math"

	"github.com/plus3/shapewars/ecs"
)

// CollisionSystem keeps non-player entities inside the window: an entity whose
// bounding circle crosses an edge is clamped back onto it and its velocity on that
// axis is inverted.
type CollisionSystem struct {
	engine *Engine
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	w, h := s.engine.bounds()

	for _, entity := range frame.Entities.Entities() {
		if entity.Tag() == TagPlayer || entity.Transform == nil || entity.Collision == nil {
			continue
		}

		t := entity.Transform
		r := entity.Collision.Radius
		t.Position.X, t.Velocity.X = reflectAxis(t.Position.X, t.Velocity.X, r, w)
		t.Position.Y, t.Velocity.Y = reflectAxis(t.Position.Y, t.Velocity.Y, r, h)
	}
}

// reflectAxis clamps p into [r, limit-r]. When p was outside, v is inverted so that
// it points back into the window.
func reflectAxis(p, v, r, limit float64) (float64, float64) {
	switch {
	case p-r < 0:
		return r, math.Abs(v)
	case p+r > limit:
		return limit - r, -math.Abs(v)
	}
	return p, v
}
