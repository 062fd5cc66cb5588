package ecs

// UpdateFrame is passed to every system executed during one tick.
type UpdateFrame struct {
	Frame    int64
	Entities *EntityManager
}

func newUpdateFrame(frame int64, entities *EntityManager) *UpdateFrame {
	return &UpdateFrame{
		Frame:    frame,
		Entities: entities,
	}
}
