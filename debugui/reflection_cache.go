package debugui

import (
	"reflect"
	"sync"

	"github.com/plus3/shapewars/ecs"
)

// componentSlot is one optional component field of ecs.Entity.
type componentSlot struct {
	Name  string
	Index int
	Type  reflect.Type
}

// entitySlots lists the component slots of ecs.Entity in declaration order. The
// entity layout is fixed, so it is resolved once.
var entitySlots = sync.OnceValue(func() []componentSlot {
	t := reflect.TypeFor[ecs.Entity]()

	var slots []componentSlot
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.Pointer || field.Type.Elem().Kind() != reflect.Struct {
			continue
		}
		slots = append(slots, componentSlot{Name: field.Name, Index: i, Type: field.Type.Elem()})
	}
	return slots
})

// FieldInfo describes one field of a component value shown in the inspector.
type FieldInfo struct {
	Name  string
	Index int
	Kind  reflect.Kind
}

// fieldCache memoizes component field lists so the inspector does not walk
// reflect.Type every frame.
type fieldCache struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]FieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{byType: make(map[reflect.Type][]FieldInfo)}
}

func (c *fieldCache) fields(t reflect.Type) []FieldInfo {
	c.mu.RLock()
	cached, ok := c.byType[t]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var fields []FieldInfo
	for i := range t.NumField() {
		field := t.Field(i)
		if field.IsExported() {
			fields = append(fields, FieldInfo{Name: field.Name, Index: i, Kind: field.Type.Kind()})
		}
	}
	c.byType[t] = fields
	return fields
}

var componentFields = newFieldCache()
