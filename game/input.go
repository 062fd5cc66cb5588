package game

import "github.com/plus3/shapewars/ecs"

// InputSystem drains the surface's event queue and applies it to the player's input
// flags and the engine state. It also runs while paused so that pause can be
// toggled off and close requests are honoured.
type InputSystem struct {
	engine *Engine
}

func (s *InputSystem) runsWhilePaused() bool { return true }

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	e := s.engine
	player := e.mustPlayer()

	for _, ev := range e.surface.PollEvents() {
		switch ev.Kind {
		case EventClosed:
			e.Stop()
		case EventKeyDown:
			switch ev.Key {
			case KeyPause:
				e.TogglePause()
			case KeyQuit:
				e.Stop()
			default:
				setKey(player.Input, ev.Key, true)
			}
		case EventKeyUp:
			setKey(player.Input, ev.Key, false)
		}
	}
}

func setKey(in *ecs.Input, key Key, held bool) {
	if in == nil {
		return
	}
	switch key {
	case KeyUp:
		in.Up = held
	case KeyDown:
		in.Down = held
	case KeyLeft:
		in.Left = held
	case KeyRight:
		in.Right = held
	}
}
