package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/worldkit/ecs"
)

// NewSystemViewer creates a viewer over both system pipelines.
func NewSystemViewer() *SystemViewer {
	return &SystemViewer{showTimings: true}
}

func (sv *SystemViewer) Render(w *ecs.World) {
	if !imgui.BeginV("System Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Show timings", &sv.showTimings)
	imgui.Separator()

	stats := w.CollectStats()

	imgui.Text("Logic systems")
	sv.renderTable("LogicSystems", w.Systems(), stats.Systems)

	imgui.Separator()
	imgui.Text("Render systems")
	renderSystems := w.RenderSystems()
	asSystems := make([]ecs.System, len(renderSystems))
	for i, rs := range renderSystems {
		asSystems[i] = rs
	}
	sv.renderTable("RenderSystems", asSystems, stats.RenderSystems)

	imgui.End()
}

// renderTable draws one pipeline. Both systems and stats come back in
// dispatch order, so rows match up by index.
func (sv *SystemViewer) renderTable(label string, systems []ecs.System, stats []ecs.SystemStats) {
	columns := int32(3)
	if sv.showTimings {
		columns = 6
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(label, columns, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	imgui.TableSetupColumn("Name")
	imgui.TableSetupColumn("Priority")
	imgui.TableSetupColumn("Enabled")
	if sv.showTimings {
		imgui.TableSetupColumn("Calls")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Last")
	}
	imgui.TableHeadersRow()

	for i, sys := range systems {
		imgui.TableNextRow()

		var name string
		if i < len(stats) {
			name = stats[i].Name
		} else {
			name = fmt.Sprintf("%T", sys)
		}

		imgui.TableNextColumn()
		imgui.Text(name)

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", sys.Priority()))

		imgui.TableNextColumn()
		enabled := sys.Enabled()
		if imgui.Checkbox(fmt.Sprintf("##enabled-%s-%d", label, i), &enabled) {
			if toggler, ok := sys.(interface{ SetEnabled(bool) }); ok {
				toggler.SetEnabled(enabled)
			}
		}

		if sv.showTimings && i < len(stats) {
			s := stats[i]

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(s.AvgDuration.String())

			imgui.TableNextColumn()
			imgui.Text(s.LastDuration.String())
		} else if sv.showTimings {
			imgui.TableNextColumn()
			imgui.TableNextColumn()
			imgui.TableNextColumn()
		}
	}

	imgui.EndTable()
}
