package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/worldkit/ecs"
)

// NewQueryDebugger creates an interactive query panel.
func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{
		selectedKinds: make(map[ecs.ComponentKind]bool),
	}
}

func (qd *QueryDebugger) Render(w *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Component kinds (AND):")
	for _, kind := range qd.liveKinds(w) {
		selected := qd.selectedKinds[kind]
		if imgui.Checkbox(string(kind), &selected) {
			if selected {
				qd.selectedKinds[kind] = true
			} else {
				delete(qd.selectedKinds, kind)
			}
		}
	}

	imgui.Separator()
	imgui.Text("Tag:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	imgui.InputTextWithHint("##tagfilter", "any", &qd.tagFilter, imgui.InputTextFlagsNone, nil)

	if imgui.Button("Reset") {
		qd.selectedKinds = make(map[ecs.ComponentKind]bool)
		qd.tagFilter = ""
	}

	imgui.Separator()

	results := qd.runQuery(w)
	imgui.Text(fmt.Sprintf("Matched %d entities", len(results)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("QueryResults", 3, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Tags")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, e := range results {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Id()))

			imgui.TableNextColumn()
			tags := e.Tags()
			sort.Strings(tags)
			imgui.Text(strings.Join(tags, ", "))

			imgui.TableNextColumn()
			kinds := e.ComponentKinds()
			kindNames := make([]string, len(kinds))
			for i, k := range kinds {
				kindNames[i] = string(k)
			}
			sort.Strings(kindNames)
			imgui.Text(strings.Join(kindNames, ", "))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// liveKinds gathers every component kind present on at least one live
// entity, so the checkbox list tracks what actually exists.
func (qd *QueryDebugger) liveKinds(w *ecs.World) []ecs.ComponentKind {
	seen := make(map[ecs.ComponentKind]struct{})
	for _, e := range w.AllEntities() {
		for _, k := range e.ComponentKinds() {
			seen[k] = struct{}{}
		}
	}
	kinds := make([]ecs.ComponentKind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (qd *QueryDebugger) runQuery(w *ecs.World) []*ecs.Entity {
	kinds := make([]ecs.ComponentKind, 0, len(qd.selectedKinds))
	for k := range qd.selectedKinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var results []*ecs.Entity
	if len(kinds) > 0 {
		results = w.EntitiesWith(kinds...)
	} else {
		results = w.AllEntities()
	}

	if qd.tagFilter == "" {
		return results
	}
	filtered := results[:0:0]
	for _, e := range results {
		if e.HasTag(qd.tagFilter) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
