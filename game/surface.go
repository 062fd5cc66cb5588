package game

import (
	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/vec"
)

// Key identifies the keys the engine reacts to. Surfaces map their native key codes
// onto these.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

// EventKind distinguishes input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventClosed
)

// Event is one input event delivered by a Surface.
type Event struct {
	Kind EventKind
	Key  Key
}

// Pressed returns a key-press event.
func Pressed(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Released returns a key-release event.
func Released(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Closed returns a window-close event.
func Closed() Event { return Event{Kind: EventClosed} }

// Drawable is everything a surface needs to draw one entity.
type Drawable struct {
	Id               ecs.EntityId
	Tag              string
	Position         vec.Vector2
	Radius           float64
	Vertices         int
	Angle            float64
	Fill             ecs.RGB
	Outline          ecs.RGB
	OutlineThickness float64
}

// Points returns the polygon outline of d.
func (d Drawable) Points() []vec.Vector2 {
	return vec.Polygon(d.Position, d.Radius, d.Vertices, d.Angle)
}

// HUD is the per-frame status overlay.
type HUD struct {
	Frame   int64
	Enemies int
	Paused  bool
}

// Surface is the windowing and rendering collaborator of the engine.
//
// PollEvents returns the events queued since the previous call and never blocks.
// Clear, Draw, DrawHUD and Display bracket one rendered frame.
type Surface interface {
	PollEvents() []Event
	Clear()
	Draw(d Drawable)
	DrawHUD(h HUD)
	Display()
	Size() (width, height int)
}
