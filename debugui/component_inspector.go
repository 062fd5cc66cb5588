package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/game"
)

// attached is one non-nil component slot of an entity.
type attached struct {
	name  string
	value reflect.Value
}

// componentsOf lists the entity's attached components in declaration order.
// The values are addressable, so edits made through them land on the entity.
func componentsOf(e *ecs.Entity) []attached {
	val := reflect.ValueOf(e).Elem()

	var out []attached
	for _, slot := range entitySlots() {
		ptr := val.Field(slot.Index)
		if ptr.IsNil() {
			continue
		}
		out = append(out, attached{name: slot.Name, value: ptr.Elem()})
	}
	return out
}

// canDestroy reports whether the inspector may remove e. The engine holds on to
// its one player for the whole game.
func canDestroy(e *ecs.Entity) bool {
	return e.Tag() != game.TagPlayer
}

type ComponentInspector struct {
	selectedEntityId ecs.EntityId
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(entities *ecs.EntityManager, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if ci.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity, ok := entities.Get(ci.selectedEntityId)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d is no longer live", ci.selectedEntityId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entity.Id()))
	imgui.Text(fmt.Sprintf("Tag: %s", entity.Tag()))
	if canDestroy(entity) {
		if imgui.Button("Destroy") {
			entity.Destroy()
		}
	} else {
		imgui.Text("The player cannot be destroyed")
	}
	imgui.Separator()

	for _, c := range componentsOf(entity) {
		if imgui.TreeNodeStr(c.name) {
			ci.renderStruct(c.value)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderStruct(val reflect.Value) {
	for _, field := range componentFields.fields(val.Type()) {
		ci.renderField(field.Name, val.Field(field.Index))
	}
}

func (ci *ComponentInspector) renderField(name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint8:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() && v >= 0 && v <= 255 {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ci.renderStruct(val)
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
