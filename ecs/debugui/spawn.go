package debugui

import "github.com/plus3/worldkit/ecs"

// SpawnDebugUI queues one entity per debug panel, each carrying an
// ImguiItem that draws it. The browser's selection feeds the inspector.
// Panels go live on the World's next Update; draw them by registering
// an ImguiSystem on the render pipeline.
func SpawnDebugUI(w *ecs.World) {
	browser := NewEntityBrowser(100)
	inspector := NewComponentInspector()
	viewer := NewSystemViewer()
	perf := NewPerformanceStats(120)
	query := NewQueryDebugger()
	timer := NewFrameTimer()

	w.CreateEntity().
		AddComponent(&ImguiItem{Render: func() { browser.Render(w) }}).
		AddTag("debugui")
	w.CreateEntity().
		AddComponent(&ImguiItem{Render: func() { inspector.Render(w, browser.SelectedEntity()) }}).
		AddTag("debugui")
	w.CreateEntity().
		AddComponent(&ImguiItem{Render: func() { viewer.Render(w) }}).
		AddTag("debugui")
	w.CreateEntity().
		AddComponent(&ImguiItem{Render: func() { perf.Render(w, timer.GetDeltaTime()) }}).
		AddTag("debugui")
	w.CreateEntity().
		AddComponent(&ImguiItem{Render: func() { query.Render(w) }}).
		AddTag("debugui")
}
