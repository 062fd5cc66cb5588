package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/shapewars/ecs"
)

type EntityInfo struct {
	ID         ecs.EntityId
	Tag        string
	X, Y       float64
	Components []string
}

type EntityBrowser struct {
	entities           []EntityInfo
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

func (eb *EntityBrowser) Render(entities *ecs.EntityManager) {
	eb.rebuild(entities)

	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := eb.filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		start, end := eb.pageBounds(len(filtered))
		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Tag)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", entity.X, entity.Y))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Components, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := eb.pageCount(len(filtered))
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// rebuild snapshots the live entities. The manager only changes at the start of a
// frame, so one snapshot per render is enough.
func (eb *EntityBrowser) rebuild(entities *ecs.EntityManager) {
	eb.entities = eb.entities[:0]
	for _, e := range entities.Entities() {
		info := EntityInfo{
			ID:         e.Id(),
			Tag:        e.Tag(),
			Components: componentNames(e),
		}
		if e.Transform != nil {
			info.X, info.Y = e.Transform.Position.X, e.Transform.Position.Y
		}
		eb.entities = append(eb.entities, info)
	}
	eb.sortEntities()

	if _, ok := entities.Get(eb.selectedEntityId); !ok {
		eb.selectedEntityId = 0
	}
}

func (eb *EntityBrowser) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = a.Tag < b.Tag
		case 2:
			less = a.X < b.X || (a.X == b.X && a.Y < b.Y)
		case 3:
			less = len(a.Components) < len(b.Components)
		default:
			less = a.ID < b.ID
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		componentsStr := strings.ToLower(strings.Join(entity.Components, " "))

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(strings.ToLower(entity.Tag), filterLower) &&
			!strings.Contains(componentsStr, filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}

	return filtered
}

func (eb *EntityBrowser) pageCount(n int) int {
	return (n + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
}

func (eb *EntityBrowser) pageBounds(n int) (int, int) {
	if pages := eb.pageCount(n); eb.currentPage >= pages {
		eb.currentPage = max(pages-1, 0)
	}
	start := eb.currentPage * eb.maxEntitiesPerPage
	end := min(start+eb.maxEntitiesPerPage, n)
	return start, end
}

func (eb *EntityBrowser) GetSelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}

func componentNames(e *ecs.Entity) []string {
	var names []string
	for _, c := range componentsOf(e) {
		names = append(names, c.name)
	}
	return names
}
