// Package terminal renders the game into a terminal with tcell. The playfield keeps
// its configured logical size and is scaled onto the terminal's cell grid, with the
// bottom row reserved for the status line.
//
// Terminals report key presses and auto-repeats but never releases, so the surface
// synthesises a key-up once a movement key has gone quiet for a few frames.
package terminal

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/shapewars/game"
)

// DefaultHoldFrames is how many frames a movement key stays held after its last
// press or repeat.
const DefaultHoldFrames = 6

const numKeys = int(game.KeyQuit) + 1

// Option configures a Surface.
type Option func(*Surface)

// WithHoldFrames overrides DefaultHoldFrames.
func WithHoldFrames(n int) Option {
	return func(s *Surface) {
		s.holdFrames = max(n, 1)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Surface) {
		s.logger = logger
	}
}

type cell struct {
	r     rune
	style tcell.Style
}

// Surface is a tcell-backed game.Surface.
type Surface struct {
	screen        tcell.Screen
	width, height int
	holdFrames    int
	logger        *slog.Logger

	events    chan tcell.Event
	closeOnce sync.Once

	held [numKeys]int

	drawing    []game.Drawable
	hud        game.HUD
	cols, rows int
	cells      []cell
}

// Open creates a Surface on the controlling terminal.
func Open(width, height int, opts ...Option) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	return New(screen, width, height, opts...)
}

// New initialises screen and starts forwarding its events. The logical playfield is
// width by height, independent of the terminal size.
func New(screen tcell.Screen, width, height int, opts ...Option) (*Surface, error) {
	s := &Surface{
		screen:     screen,
		width:      width,
		height:     height,
		holdFrames: DefaultHoldFrames,
		logger:     slog.Default(),
		events:     make(chan tcell.Event, 64),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.HideCursor()
	s.cols, s.rows = screen.Size()

	go s.pump()
	return s, nil
}

// pump forwards screen events until the screen is finalised.
func (s *Surface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		select {
		case s.events <- ev:
		default:
			s.logger.Warn("terminal event dropped", "event", fmt.Sprintf("%T", ev))
		}
	}
}

// PollEvents drains the forwarded events without blocking.
func (s *Surface) PollEvents() []game.Event {
	var (
		out     []game.Event
		pressed [numKeys]bool
	)

drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				break drain
			}
			out = s.translate(ev, out, &pressed)
		default:
			break drain
		}
	}

	return s.release(out, &pressed)
}

func (s *Surface) translate(ev tcell.Event, out []game.Event, pressed *[numKeys]bool) []game.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.cols, s.rows = ev.Size()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return append(out, game.Closed())
		}

		key := mapKey(ev)
		switch key {
		case game.KeyNone:
		case game.KeyPause, game.KeyQuit:
			out = append(out, game.Pressed(key))
		default:
			if s.held[key] == 0 {
				out = append(out, game.Pressed(key))
			}
			s.held[key] = s.holdFrames
			pressed[key] = true
		}
	}
	return out
}

// release counts down held movement keys that saw no press this frame and emits a
// key-up for each one that runs out.
func (s *Surface) release(out []game.Event, pressed *[numKeys]bool) []game.Event {
	for k := game.KeyUp; k <= game.KeyRight; k++ {
		if pressed[k] || s.held[k] == 0 {
			continue
		}
		s.held[k]--
		if s.held[k] == 0 {
			out = append(out, game.Released(k))
		}
	}
	return out
}

func mapKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape:
		return game.KeyQuit
	}

	switch ev.Rune() {
	case 'w', 'W':
		return game.KeyUp
	case 's', 'S':
		return game.KeyDown
	case 'a', 'A':
		return game.KeyLeft
	case 'd', 'D':
		return game.KeyRight
	case 'p', 'P', ' ':
		return game.KeyPause
	case 'q', 'Q':
		return game.KeyQuit
	}
	return game.KeyNone
}

func (s *Surface) Clear() {
	s.drawing = s.drawing[:0]
}

func (s *Surface) Draw(d game.Drawable) {
	s.drawing = append(s.drawing, d)
}

func (s *Surface) DrawHUD(h game.HUD) {
	s.hud = h
}

// Display rasterises the buffered frame and shows it.
func (s *Surface) Display() {
	s.rasterize()

	s.screen.Clear()
	for i, c := range s.cells {
		if c.r == 0 {
			continue
		}
		s.screen.SetContent(i%s.cols, i/s.cols, c.r, nil, c.style)
	}
	s.screen.Show()
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Close restores the terminal. It is safe to call more than once.
func (s *Surface) Close() error {
	s.closeOnce.Do(s.screen.Fini)
	return nil
}
