// Package ebitensurface implements game.Surface on top of Ebitengine. Ebitengine owns
// the main loop, so the engine is ticked from ebiten.Game.Update and the frame it
// renders is replayed onto the screen in ebiten.Game.Draw.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/shapewars/config"
	"github.com/plus3/shapewars/game"
)

const windowTitle = "shapewars"

// Overlay draws on top of the game, e.g. the Dear ImGui debug windows.
type Overlay interface {
	CreateWindow(title string, width, height int)
	BeginFrame()
	Update()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	CapturesKeyboard() bool
}

// Ticker is the part of the engine the surface drives.
type Ticker interface {
	Tick()
	State() game.State
}

// Option configures a Surface.
type Option func(*Surface)

// WithOverlay draws o above the game and routes window creation through it.
func WithOverlay(o Overlay) Option {
	return func(s *Surface) {
		s.overlay = o
	}
}

// Surface is an Ebitengine-backed game.Surface.
type Surface struct {
	width, height int
	overlay       Overlay

	face      *text.GoTextFace
	fontColor color.RGBA

	keys    []ebiten.Key
	events  []game.Event
	drawing []game.Drawable
	frame   []game.Drawable
	hud     game.HUD

	vertices []ebiten.Vertex
	indices  []uint16
}

// New configures the Ebitengine window from cfg and loads the HUD font if one is
// configured. A font that cannot be loaded is reported as an error.
func New(cfg *config.Config, opts ...Option) (*Surface, error) {
	s := &Surface{
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Font != nil {
		face, err := loadFace(cfg.Font.Path, float64(cfg.Font.Size))
		if err != nil {
			return nil, err
		}
		s.face = face
		s.fontColor = cfg.Font.Color.RGBA()
	}

	if s.overlay != nil {
		s.overlay.CreateWindow(windowTitle, s.width, s.height)
	} else {
		ebiten.SetWindowSize(s.width, s.height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	if cfg.Window.FramerateLimit > 0 {
		ebiten.SetTPS(cfg.Window.FramerateLimit)
	}
	ebiten.SetWindowClosingHandled(true)

	return s, nil
}

func loadFace(path string, size float64) (*text.GoTextFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: load font: %w", err)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: parse font %s: %w", path, err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// Run hands control to Ebitengine until the engine stops or the window closes.
func (s *Surface) Run(t Ticker) error {
	return ebiten.RunGame(&runner{surface: s, ticker: t})
}

func (s *Surface) PollEvents() []game.Event {
	events := s.events
	s.events = nil
	return events
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

func (s *Surface) Display() {
	s.frame = append(s.frame[:0], s.drawing...)
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Close is a no-op: Ebitengine tears the window down when RunGame returns.
func (s *Surface) Close() error {
	return nil
}

func (s *Surface) collectInput() {
	captured := s.overlay != nil && s.overlay.CapturesKeyboard()

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	s.events = appendKeyEvents(s.events, s.keys, game.Pressed, captured)

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	s.events = appendKeyEvents(s.events, s.keys, game.Released, false)

	if ebiten.IsWindowBeingClosed() {
		s.events = append(s.events, game.Closed())
	}
}

// appendKeyEvents maps keys to game events. While the overlay owns the keyboard,
// presses are dropped; releases always pass so that no movement key stays held.
func appendKeyEvents(events []game.Event, keys []ebiten.Key, event func(game.Key) game.Event, captured bool) []game.Event {
	if captured {
		return events
	}
	for _, k := range keys {
		if key := mapKey(k); key != game.KeyNone {
			events = append(events, event(key))
		}
	}
	return events
}

func mapKey(k ebiten.Key) game.Key {
	switch k {
	case ebiten.KeyW, ebiten.KeyArrowUp:
		return game.KeyUp
	case ebiten.KeyS, ebiten.KeyArrowDown:
		return game.KeyDown
	case ebiten.KeyA, ebiten.KeyArrowLeft:
		return game.KeyLeft
	case ebiten.KeyD, ebiten.KeyArrowRight:
		return game.KeyRight
	case ebiten.KeyP, ebiten.KeySpace:
		return game.KeyPause
	case ebiten.KeyEscape:
		return game.KeyQuit
	}
	return game.KeyNone
}

// runner adapts the surface and engine to ebiten.Game.
type runner struct {
	surface *Surface
	ticker  Ticker
}

func (r *runner) Update() error {
	s := r.surface
	s.collectInput()

	if s.overlay != nil {
		s.overlay.BeginFrame()
	}
	r.ticker.Tick()
	if s.overlay != nil {
		s.overlay.Update()
		s.overlay.EndFrame()
	}

	if r.ticker.State() == game.Stopped {
		return ebiten.Termination
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	s := r.surface
	screen.Fill(color.Black)

	for _, d := range s.frame {
		s.drawShape(screen, d)
	}
	s.drawHUD(screen)

	if s.overlay != nil {
		s.overlay.Draw(screen)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := r.surface
	if s.overlay != nil {
		s.overlay.Layout(s.width, s.height)
	}
	return s.width, s.height
}

func (s *Surface) drawShape(screen *ebiten.Image, d game.Drawable) {
	points := d.Points()

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawTriangles(screen, d.Fill.RGBA())

	if d.OutlineThickness <= 0 {
		return
	}
	stroke := &vector.StrokeOptions{
		Width:    float32(d.OutlineThickness),
		LineJoin: vector.LineJoinMiter,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], stroke)
	s.drawTriangles(screen, d.Outline.RGBA())
}
