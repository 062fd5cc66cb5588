package game

import "github.com/plus3/shapewars/ecs"

// RenderSystem draws every live entity with a Transform and a Shape, then the HUD,
// and presents the frame. Shapes spin by their vertex count in degrees per frame
// while the engine is running.
type RenderSystem struct {
	engine *Engine
}

func (s *RenderSystem) runsWhilePaused() bool { return true }

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	e := s.engine
	if e.state == Stopped {
		return
	}

	surface := e.surface
	surface.Clear()

	enemies := 0
	for _, entity := range frame.Entities.Entities() {
		if entity.Tag() == TagEnemy {
			enemies++
		}
		if entity.Transform == nil || entity.Shape == nil {
			continue
		}

		t := entity.Transform
		shape := entity.Shape
		if e.state == Running {
			t.Angle = normalizeAngle(t.Angle + float64(shape.Vertices))
		}

		surface.Draw(Drawable{
			Id:               entity.Id(),
			Tag:              entity.Tag(),
			Position:         t.Position,
			Radius:           shape.Radius,
			Vertices:         shape.Vertices,
			Angle:            t.Angle,
			Fill:             shape.Fill,
			Outline:          shape.Outline,
			OutlineThickness: shape.OutlineThickness,
		})
	}

	surface.DrawHUD(HUD{
		Frame:   frame.Frame,
		Enemies: enemies,
		Paused:  e.state == Paused,
	})
	surface.Display()
}

func normalizeAngle(deg float64) float64 {
	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}
	return deg
}
