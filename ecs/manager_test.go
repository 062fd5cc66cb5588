package ecs_test

import (
	"testing"

	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(entities []*ecs.Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Tag())
	}
	return out
}

func TestQueriesBeforeFirstUpdateAreEmpty(t *testing.T) {
	m := ecs.NewEntityManager()
	m.AddEntity("player")

	assert.Empty(t, m.Entities())
	assert.Empty(t, m.EntitiesByTag("player"))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 1, m.Pending())
}

func TestAddedEntitiesBecomeVisibleAfterOneUpdate(t *testing.T) {
	for _, count := range []int{1, 2, 5, 40} {
		m := ecs.NewEntityManager()
		added := make([]*ecs.Entity, 0, count)
		for range count {
			added = append(added, m.AddEntity("enemy"))
		}
		assert.Empty(t, m.Entities())

		m.Update()

		require.Len(t, m.Entities(), count)
		assert.Equal(t, added, m.Entities())
		assert.Equal(t, 0, m.Pending())
	}
}

func TestIdsAreUniqueAndIncreasing(t *testing.T) {
	m := ecs.NewEntityManager()
	var last ecs.EntityId
	for range 10 {
		e := m.AddEntity("enemy")
		assert.Greater(t, e.Id(), last)
		last = e.Id()
	}

	m.Update()
	m.AddEntity("enemy")
	next := m.AddEntity("enemy")
	assert.Greater(t, next.Id(), last)
}

func TestEntityAddedMidFrameIsDeferred(t *testing.T) {
	m := ecs.NewEntityManager()
	m.AddEntity("player")
	m.Update()

	late := m.AddEntity("enemy")
	assert.Equal(t, []string{"player"}, tags(m.Entities()))
	_, ok := m.Get(late.Id())
	assert.False(t, ok)

	m.Update()
	assert.Equal(t, []string{"player", "enemy"}, tags(m.Entities()))
	got, ok := m.Get(late.Id())
	require.True(t, ok)
	assert.Same(t, late, got)
}

func TestDestroyedEntitiesArePurgedOnUpdate(t *testing.T) {
	m := ecs.NewEntityManager()
	a := m.AddEntity("enemy")
	b := m.AddEntity("enemy")
	c := m.AddEntity("enemy")
	m.Update()

	b.Destroy()
	assert.False(t, b.IsAlive())
	assert.Len(t, m.Entities(), 3, "dead entities stay visible until the next update")

	m.Update()
	assert.Equal(t, []*ecs.Entity{a, c}, m.Entities())
	_, ok := m.Get(b.Id())
	assert.False(t, ok)

	for range 3 {
		m.Update()
		assert.NotContains(t, m.Entities(), b)
	}
}

func TestPendingEntityDestroyedBeforeCommitNeverAppears(t *testing.T) {
	m := ecs.NewEntityManager()
	e := m.AddEntity("enemy")
	e.Destroy()

	m.Update()
	assert.Empty(t, m.Entities())
}

func TestUpdateIsIdempotentWithoutChanges(t *testing.T) {
	m := ecs.NewEntityManager()
	m.AddEntity("player")
	m.AddEntity("enemy")
	m.Update()

	before := append([]*ecs.Entity(nil), m.Entities()...)
	m.Update()
	m.Update()

	assert.Equal(t, before, m.Entities())
}

func TestEntitiesByTagKeepsInsertionOrder(t *testing.T) {
	m := ecs.NewEntityManager()
	e1 := m.AddEntity("enemy")
	m.AddEntity("player")
	e2 := m.AddEntity("enemy")
	m.Update()
	e3 := m.AddEntity("enemy")
	m.Update()

	assert.Equal(t, []*ecs.Entity{e1, e2, e3}, m.EntitiesByTag("enemy"))
	assert.Len(t, m.EntitiesByTag("player"), 1)
	assert.Empty(t, m.EntitiesByTag("bullet"))

	e2.Destroy()
	m.Update()
	assert.Equal(t, []*ecs.Entity{e1, e3}, m.EntitiesByTag("enemy"))
}

func TestEmptyTagPanics(t *testing.T) {
	m := ecs.NewEntityManager()
	assert.Panics(t, func() { m.AddEntity("") })
}

func TestComponentSlotsAreLastWriteWins(t *testing.T) {
	m := ecs.NewEntityManager()
	e := m.AddEntity("enemy")

	e.Shape = &ecs.Shape{Radius: 10, Vertices: 3}
	e.Shape = &ecs.Shape{Radius: 20, Vertices: 6}
	e.Transform = &ecs.Transform{Position: vec.New(1, 2)}
	m.Update()

	got := m.Entities()[0]
	assert.Equal(t, 6, got.Shape.Vertices)
	assert.Equal(t, 20.0, got.Shape.Radius)
	assert.Nil(t, got.Collision)
	assert.Nil(t, got.Input)
}

func TestRGBConversion(t *testing.T) {
	c := ecs.RGB{R: 10, G: 20, B: 30}.RGBA()
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(20), c.G)
	assert.Equal(t, uint8(30), c.B)
	assert.Equal(t, uint8(0xff), c.A)
}
