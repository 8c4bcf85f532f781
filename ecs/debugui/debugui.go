// Package debugui provides immediate-mode GUI inspection of a World
// using Dear ImGui. Widgets are attached to ordinary entities through
// the ImguiItem component and drawn by ImguiSystem during the render
// pass.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/worldkit/ecs"
)

// KindImguiItem is the component kind of ImguiItem. It lives outside
// the built-in kind set so the debug UI never collides with gameplay
// components.
const KindImguiItem ecs.ComponentKind = "debugui:item"

// ImguiItem holds a Dear ImGui render callback. Attach it to an entity
// to have the callback invoked once per render pass.
type ImguiItem struct {
	Render func()
}

func (*ImguiItem) Kind() ecs.ComponentKind { return KindImguiItem }

// ImguiInputState reports whether Dear ImGui currently captures mouse
// or keyboard input, so gameplay input handling can yield to the UI.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem draws every ImguiItem callback and refreshes the input
// capture state. Register it on the render pipeline, typically with a
// high priority so the UI draws on top.
type ImguiSystem struct {
	ecs.BaseRenderSystem

	input ImguiInputState
}

// NewImguiSystem creates the render system that drives all ImguiItem
// callbacks.
func NewImguiSystem(priority int) *ImguiSystem {
	return &ImguiSystem{
		BaseRenderSystem: ecs.NewBaseRenderSystem(priority, KindImguiItem),
	}
}

func (s *ImguiSystem) Render(entities []*ecs.Entity) {
	io := imgui.CurrentIO()
	s.input.WantCaptureMouse = io.WantCaptureMouse()
	s.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, e := range entities {
		item, ok := ecs.Get[*ImguiItem](e, KindImguiItem)
		if !ok || item.Render == nil {
			continue
		}
		item.Render()
	}
}

// InputState returns the capture state sampled at the last render pass.
func (s *ImguiSystem) InputState() ImguiInputState {
	return s.input
}
