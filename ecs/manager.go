package ecs

import "github.com/kamstrup/intmap"

// EntityManager owns every entity and commits structural changes at a single
// synchronization point. Entities added during a frame sit in a pending queue and
// become visible only after the next Update; destroyed entities are purged there too.
type EntityManager struct {
	nextId  EntityId
	pending []*Entity
	live    []*Entity
	byTag   map[string][]*Entity
	byId    *intmap.Map[EntityId, *Entity]
}

// NewEntityManager creates an empty manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		byTag: make(map[string][]*Entity),
		byId:  intmap.New[EntityId, *Entity](256),
	}
}

// AddEntity allocates an entity with a fresh id and queues it for the next Update.
// The returned entity can be configured immediately even though it is not yet live.
func (m *EntityManager) AddEntity(tag string) *Entity {
	if tag == "" {
		panic("ecs: entity tag must not be empty")
	}

	m.nextId++
	e := newEntity(m.nextId, tag)
	m.pending = append(m.pending, e)
	return e
}

// Update commits pending entities to the live set and then removes every dead one.
// It must be called exactly once per frame before any system runs.
func (m *EntityManager) Update() {
	if len(m.pending) == 0 && !m.hasDead() {
		return
	}

	m.live = append(m.live, m.pending...)
	clear(m.pending)
	m.pending = m.pending[:0]

	kept := m.live[:0]
	for _, e := range m.live {
		if e.alive {
			kept = append(kept, e)
		}
	}
	clear(m.live[len(kept):])
	m.live = kept

	m.reindex()
}

func (m *EntityManager) hasDead() bool {
	for _, e := range m.live {
		if !e.alive {
			return true
		}
	}
	return false
}

func (m *EntityManager) reindex() {
	clear(m.byTag)
	m.byId.Clear()
	for _, e := range m.live {
		m.byTag[e.tag] = append(m.byTag[e.tag], e)
		m.byId.Put(e.id, e)
	}
}

// Entities returns the live set in insertion order. The slice is a view that is
// replaced on Update; callers must not add or remove entities while iterating it.
func (m *EntityManager) Entities() []*Entity {
	return m.live
}

// EntitiesByTag returns the live entities carrying tag, in insertion order.
func (m *EntityManager) EntitiesByTag(tag string) []*Entity {
	return m.byTag[tag]
}

// Get looks up a live entity by id.
func (m *EntityManager) Get(id EntityId) (*Entity, bool) {
	return m.byId.Get(id)
}

// Len returns the number of live entities.
func (m *EntityManager) Len() int {
	return len(m.live)
}

// Pending returns the number of entities waiting for the next Update.
func (m *EntityManager) Pending() int {
	return len(m.pending)
}
