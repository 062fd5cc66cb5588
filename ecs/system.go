package ecs

// System represents a per-frame behavior that reads and mutates components across
// the live entity set. Systems may keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
