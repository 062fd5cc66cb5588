// Package debugui draws Dear ImGui diagnostics over a running game: scheduler timings,
// a browser over live entities, and an inspector for the selected entity's components.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	debugui_ebiten "github.com/plus3/shapewars/debugui/ebiten"
	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/game"
)

// Source is the view of the engine the overlay reads from.
type Source interface {
	Entities() *ecs.EntityManager
	Stats() *ecs.SchedulerStats
	Frame() int64
	State() game.State
	TogglePause()
}

// Overlay owns the ImGui backend and the debug windows.
type Overlay struct {
	backend *debugui_ebiten.ImguiBackend
	source  Source

	// keyboardCaptured is set while an ImGui widget, such as the entity filter, has
	// keyboard focus.
	keyboardCaptured bool

	timer     *FrameTimer
	stats     *PerformanceStats
	browser   *EntityBrowser
	inspector *ComponentInspector
}

func NewOverlay() *Overlay {
	return &Overlay{
		backend:   debugui_ebiten.NewImguiBackend(),
		timer:     NewFrameTimer(),
		stats:     NewPerformanceStats(120),
		browser:   NewEntityBrowser(100),
		inspector: NewComponentInspector(),
	}
}

// SetSource attaches the engine whose state is displayed. Until a source is set
// the overlay renders nothing.
func (o *Overlay) SetSource(src Source) {
	o.source = src
}

// CapturesKeyboard reports whether ImGui wanted the keyboard during the last Update.
// Key presses typed into a debug window must not reach the game.
func (o *Overlay) CapturesKeyboard() bool {
	return o.keyboardCaptured
}

func (o *Overlay) CreateWindow(title string, width, height int) {
	o.backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// Update renders every debug window. It must run between BeginFrame and EndFrame.
func (o *Overlay) Update() {
	o.keyboardCaptured = imgui.CurrentIO().WantCaptureKeyboard()

	dt := o.timer.GetDeltaTime()
	if o.source == nil {
		return
	}

	o.stats.Render(o.source, dt)
	o.browser.Render(o.source.Entities())
	o.inspector.Render(o.source.Entities(), o.browser.GetSelectedEntity())
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}
