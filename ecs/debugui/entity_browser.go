package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/worldkit/ecs"
)

type entityRow struct {
	Id             ecs.EntityId
	Tags           []string
	Kinds          []string
	ComponentCount int
}

// NewEntityBrowser creates a browser showing at most maxEntitiesPerPage
// rows per page.
func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterTag = ""
	}

	rows := eb.buildRows(w)
	filtered := eb.filterRows(rows)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Tags")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		eb.sortRows(filtered)

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if startIdx > len(filtered) {
			startIdx = len(filtered)
			eb.currentPage = 0
		}
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == row.Id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = row.Id
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Tags, ", "))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Kinds, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.ComponentCount))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
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

// buildRows walks the live set every frame. The core holds hundreds of
// entities, so there is nothing worth caching here.
func (eb *EntityBrowser) buildRows(w *ecs.World) []entityRow {
	entities := w.AllEntities()
	rows := make([]entityRow, 0, len(entities))
	for _, e := range entities {
		kinds := e.ComponentKinds()
		kindNames := make([]string, len(kinds))
		for i, k := range kinds {
			kindNames[i] = string(k)
		}
		sort.Strings(kindNames)

		tags := e.Tags()
		sort.Strings(tags)

		rows = append(rows, entityRow{
			Id:             e.Id(),
			Tags:           tags,
			Kinds:          kindNames,
			ComponentCount: len(kindNames),
		})
	}
	return rows
}

func (eb *EntityBrowser) filterRows(rows []entityRow) []entityRow {
	if eb.filterText == "" && eb.filterTag == "" {
		return rows
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]entityRow, 0, len(rows))
	for _, row := range rows {
		if eb.filterTag != "" && !contains(row.Tags, eb.filterTag) {
			continue
		}
		if eb.filterText != "" {
			idStr := fmt.Sprintf("%d", row.Id)
			tagsStr := strings.ToLower(strings.Join(row.Tags, " "))
			kindsStr := strings.ToLower(strings.Join(row.Kinds, " "))
			if !strings.Contains(idStr, filterLower) &&
				!strings.Contains(tagsStr, filterLower) &&
				!strings.Contains(kindsStr, filterLower) {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func (eb *EntityBrowser) sortRows(rows []entityRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = strings.Join(a.Tags, ",") < strings.Join(b.Tags, ",")
		case 2:
			less = strings.Join(a.Kinds, ",") < strings.Join(b.Kinds, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.Id < b.Id
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

// SelectedEntity returns the id picked in the browser, or 0.
func (eb *EntityBrowser) SelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
