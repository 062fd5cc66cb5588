// Package headless provides an in-memory game.Surface. It renders nothing; it records
// what the engine drew and replays queued input events, which makes it the surface
// of choice for tests and benchmarks.
package headless

import (
	"sync"

	"github.com/plus3/shapewars/game"
)

// Surface records draw calls and hands out queued events.
type Surface struct {
	width, height int

	mu      sync.Mutex
	queued  []game.Event
	drawing []game.Drawable

	// Frame holds the drawables of the most recently presented frame.
	Frame []game.Drawable
	// HUD holds the most recently drawn status overlay.
	HUD game.HUD
	// Presented counts Display calls.
	Presented int
	// Polls counts PollEvents calls.
	Polls int
}

// New returns a surface of the given size.
func New(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Push queues events for the next PollEvents call. It is safe to call from another
// goroutine while the engine runs.
func (s *Surface) Push(events ...game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, events...)
}

func (s *Surface) PollEvents() []game.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Polls++
	events := s.queued
	s.queued = nil
	return events
}

func (s *Surface) Clear() {
	s.drawing = s.drawing[:0]
}

func (s *Surface) Draw(d game.Drawable) {
	s.drawing = append(s.drawing, d)
}

func (s *Surface) DrawHUD(h game.HUD) {
	s.HUD = h
}

func (s *Surface) Display() {
	s.Frame = append(s.Frame[:0], s.drawing...)
	s.Presented++
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Close releases nothing; it exists so the surface can stand in for real ones.
func (s *Surface) Close() error {
	return nil
}
