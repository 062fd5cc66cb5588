package debugui

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/game"
	"github.com/plus3/shapewars/surface/ebitensurface"
	"github.com/plus3/shapewars/vec"
)

func populate(t *testing.T) *ecs.EntityManager {
	t.Helper()
	m := ecs.NewEntityManager()

	player := m.AddEntity(game.TagPlayer)
	player.Transform = &ecs.Transform{Position: vec.New(400, 300)}
	player.Input = &ecs.Input{}

	for i := range 3 {
		e := m.AddEntity(game.TagEnemy)
		e.Transform = &ecs.Transform{Position: vec.New(float64(100*(3-i)), 50)}
		e.Shape = &ecs.Shape{Radius: 32, Vertices: 3 + i}
		e.Lifespan = &ecs.Lifespan{Total: 90, Remaining: 90}
	}

	m.Update()
	require.Equal(t, 4, m.Len())
	return m
}

func TestEntitySlots(t *testing.T) {
	var names []string
	for _, slot := range entitySlots() {
		assert.Equal(t, reflect.Struct, slot.Type.Kind())
		names = append(names, slot.Name)
	}
	assert.Equal(t, []string{"Transform", "Shape", "Collision", "Input", "Score", "Lifespan"}, names)
	assert.Equal(t, reflect.TypeFor[ecs.Transform](), entitySlots()[0].Type)
}

func TestComponentFieldsCached(t *testing.T) {
	cache := newFieldCache()
	fields := cache.fields(reflect.TypeFor[ecs.Transform]())

	require.Len(t, fields, 3)
	assert.Equal(t, FieldInfo{Name: "Position", Index: 0, Kind: reflect.Struct}, fields[0])
	assert.Equal(t, FieldInfo{Name: "Angle", Index: 2, Kind: reflect.Float64}, fields[2])

	again := cache.fields(reflect.TypeFor[ecs.Transform]())
	assert.Same(t, &fields[0], &again[0], "second lookup should hit the cache")
}

func TestPlayerCannotBeDestroyed(t *testing.T) {
	m := populate(t)
	assert.False(t, canDestroy(m.EntitiesByTag(game.TagPlayer)[0]))
	assert.True(t, canDestroy(m.EntitiesByTag(game.TagEnemy)[0]))
}

func TestOverlayReportsKeyboardCapture(t *testing.T) {
	var _ ebitensurface.Overlay = (*Overlay)(nil)

	o := &Overlay{}
	assert.False(t, o.CapturesKeyboard())
	o.keyboardCaptured = true
	assert.True(t, o.CapturesKeyboard())
}

func TestComponentsOfSkipsEmptySlots(t *testing.T) {
	m := populate(t)
	player := m.EntitiesByTag(game.TagPlayer)[0]

	got := componentsOf(player)
	require.Len(t, got, 2)
	assert.Equal(t, "Transform", got[0].name)
	assert.Equal(t, "Input", got[1].name)
}

func TestComponentsOfEditsInPlace(t *testing.T) {
	m := populate(t)
	player := m.EntitiesByTag(game.TagPlayer)[0]

	transform := componentsOf(player)[0].value
	x := transform.FieldByName("Position").FieldByName("X")
	require.True(t, x.CanSet())
	x.SetFloat(12)

	assert.Equal(t, 12.0, player.Transform.Position.X)
}

func TestEntityBrowserRebuildAndSort(t *testing.T) {
	m := populate(t)
	eb := NewEntityBrowser(100)
	eb.rebuild(m)

	require.Len(t, eb.entities, 4)
	for i := 1; i < len(eb.entities); i++ {
		assert.Less(t, eb.entities[i-1].ID, eb.entities[i].ID)
	}
	assert.Equal(t, []string{"Transform", "Shape", "Lifespan"}, eb.entities[1].Components)

	eb.sortColumn = 2
	eb.sortEntities()
	assert.Equal(t, 100.0, eb.entities[0].X)
	assert.Equal(t, 400.0, eb.entities[3].X)

	eb.sortAscending = false
	eb.sortEntities()
	assert.Equal(t, 400.0, eb.entities[0].X)
}

func TestEntityBrowserFilter(t *testing.T) {
	m := populate(t)
	eb := NewEntityBrowser(100)
	eb.rebuild(m)

	eb.filterText = "ENEMY"
	assert.Len(t, eb.filtered(), 3)

	eb.filterText = "input"
	got := eb.filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "player", got[0].Tag)

	eb.filterText = ""
	assert.Len(t, eb.filtered(), 4)
}

func TestEntityBrowserDropsDeadSelection(t *testing.T) {
	m := populate(t)
	eb := NewEntityBrowser(100)

	enemy := m.EntitiesByTag(game.TagEnemy)[0]
	eb.selectedEntityId = enemy.Id()
	eb.rebuild(m)
	assert.Equal(t, enemy.Id(), eb.GetSelectedEntity())

	enemy.Destroy()
	m.Update()
	eb.rebuild(m)
	assert.Equal(t, ecs.EntityId(0), eb.GetSelectedEntity())
}

func TestEntityBrowserPaging(t *testing.T) {
	eb := NewEntityBrowser(2)

	start, end := eb.pageBounds(5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	eb.currentPage = 2
	start, end = eb.pageBounds(5)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)

	// Shrinking below the current page snaps back to the last page.
	start, end = eb.pageBounds(3)
	assert.Equal(t, 1, eb.currentPage)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)

	start, end = eb.pageBounds(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(4)
	for range 4 {
		ps.record(0.016)
	}
	assert.InDelta(t, 16.0, ps.averageFrameTime(), 1e-4)

	ps.record(0.032)
	assert.Equal(t, 1, ps.frameIndex)
	assert.InDelta(t, 20.0, ps.averageFrameTime(), 1e-4)
}

func TestFrameTimeLabel(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.Equal(t, "Avg Frame Time: n/a", frameTimeLabel(ps.averageFrameTime()))

	for range 4 {
		ps.record(0.02)
	}
	assert.Equal(t, "Avg Frame Time: 20.00 ms (50 FPS)", frameTimeLabel(ps.averageFrameTime()))
}
