package debugui

import (
	"github.com/plus3/worldkit/ecs"
)

// EntityBrowser lists live entities with filtering, sorting, and
// pagination, and tracks the selection the inspector works on.
type EntityBrowser struct {
	filterText         string
	filterTag          string
	selectedEntityId   ecs.EntityId
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

// ComponentInspector edits the selected entity's component fields in
// place through reflection.
type ComponentInspector struct {
	selectedEntityId ecs.EntityId
}

// SystemViewer shows both system lists with priorities, enabled
// toggles, and execution timings.
type SystemViewer struct {
	showTimings bool
}

// PerformanceStats plots recent frame times next to world statistics.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// QueryDebugger runs interactive kind/tag queries against the World.
type QueryDebugger struct {
	selectedKinds map[ecs.ComponentKind]bool
	tagFilter     string
}
