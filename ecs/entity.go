package ecs

// EntityId is the unique, monotonically increasing identity of an entity.
// The zero value never identifies a live entity.
type EntityId uint64

// Entity is a uniquely identified game object. Each component kind is an explicit
// optional slot; a nil slot means the entity does not carry that component.
// Assigning a slot replaces any previous value (last write wins).
type Entity struct {
	id    EntityId
	tag   string
	alive bool

	Transform *Transform
	Shape     *Shape
	Collision *Collision
	Input     *Input
	Score     *Score
	Lifespan  *Lifespan
}

func newEntity(id EntityId, tag string) *Entity {
	return &Entity{
		id:    id,
		tag:   tag,
		alive: true,
	}
}

// Id returns the entity's identity.
func (e *Entity) Id() EntityId {
	return e.id
}

// Tag returns the tag the entity was created with.
func (e *Entity) Tag() string {
	return e.tag
}

// IsAlive reports whether the entity has not been destroyed.
func (e *Entity) IsAlive() bool {
	return e.alive
}

// Destroy marks the entity dead. It stays visible until the next EntityManager.Update.
func (e *Entity) Destroy() {
	e.alive = false
}
