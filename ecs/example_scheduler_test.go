package ecs_test

import (
	"fmt"

	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/vec"
)

type DriftSystem struct{}

func (s *DriftSystem) Execute(frame *ecs.UpdateFrame) {
	for _, e := range frame.Entities.Entities() {
		e.Transform.Position = e.Transform.Position.Add(e.Transform.Velocity)
	}
}

type PrintSystem struct{}

func (s *PrintSystem) Execute(frame *ecs.UpdateFrame) {
	for _, e := range frame.Entities.Entities() {
		p := e.Transform.Position
		fmt.Printf("frame %d: %s at (%.0f, %.0f)\n", frame.Frame, e.Tag(), p.X, p.Y)
	}
}

// ExampleScheduler demonstrates a frame loop: the entity manager is committed at the
// top of each frame and the registered systems then run in registration order.
func ExampleScheduler() {
	entities := ecs.NewEntityManager()
	e := entities.AddEntity("enemy")
	e.Transform = &ecs.Transform{Position: vec.New(10, 10), Velocity: vec.New(5, -1)}

	scheduler := ecs.NewScheduler(entities)
	scheduler.Register(&DriftSystem{})
	scheduler.Register(&PrintSystem{})

	for frame := range int64(3) {
		entities.Update()
		scheduler.Once(frame)
	}

	stats := scheduler.GetStats()
	fmt.Printf("%d systems, %d executions\n", stats.SystemCount, stats.TotalExecutions)

	// Output:
	// frame 0: enemy at (15, 9)
	// frame 1: enemy at (20, 8)
	// frame 2: enemy at (25, 7)
	// 2 systems, 6 executions
}
