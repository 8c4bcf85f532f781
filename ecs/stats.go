package ecs

import (
	"reflect"
	"time"
)

// WorldStats is a point-in-time summary of a World: live entity count,
// queue depths, and per-system execution timings for both pipelines.
type WorldStats struct {
	EntityCount   int
	PendingAdds   int
	PendingRemove int
	Systems       []SystemStats
	RenderSystems []SystemStats
}

// SystemStats reports execution timing for a single registered system.
type SystemStats struct {
	Name           string
	Priority       int
	Enabled        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newSystemTimings(s System) systemTimings {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return systemTimings{
		name:        t.Name(),
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (t *systemTimings) record(d time.Duration) {
	t.executionCount++
	t.lastDuration = d
	t.totalDuration += d
	if d < t.minDuration {
		t.minDuration = d
	}
	if d > t.maxDuration {
		t.maxDuration = d
	}
}

func (t *systemTimings) snapshot(s System) SystemStats {
	avg := time.Duration(0)
	if t.executionCount > 0 {
		avg = t.totalDuration / time.Duration(t.executionCount)
	}
	return SystemStats{
		Name:           t.name,
		Priority:       s.Priority(),
		Enabled:        s.Enabled(),
		ExecutionCount: t.executionCount,
		MinDuration:    t.minDuration,
		MaxDuration:    t.maxDuration,
		AvgDuration:    avg,
		LastDuration:   t.lastDuration,
		TotalDuration:  t.totalDuration,
	}
}

// CollectStats gathers current statistics. The debug UI and the stress
// tool render these; nothing in the core depends on them.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		EntityCount:   len(w.live),
		PendingAdds:   len(w.pendingAdd),
		PendingRemove: len(w.pendingRemove),
		Systems:       make([]SystemStats, len(w.systems)),
		RenderSystems: make([]SystemStats, len(w.renderSystems)),
	}
	for i, entry := range w.systems {
		stats.Systems[i] = entry.stats.snapshot(entry.sys)
	}
	for i, entry := range w.renderSystems {
		stats.RenderSystems[i] = entry.stats.snapshot(entry.sys)
	}
	return stats
}
