package ecs

import (
	"testing"
	"time"
)

type sleepSystem struct {
	BaseSystem
	sleepDur time.Duration
}

func (s *sleepSystem) Update(entities []*Entity, dt float64) {
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestCollectStats(t *testing.T) {
	w := NewWorld()

	stats := w.CollectStats()
	if stats.EntityCount != 0 || len(stats.Systems) != 0 || len(stats.RenderSystems) != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	sys := &sleepSystem{BaseSystem: NewBaseSystem(7), sleepDur: time.Millisecond}
	w.AddSystem(sys)

	w.CreateEntity()
	w.CreateEntity()
	stats = w.CollectStats()
	if stats.PendingAdds != 2 {
		t.Errorf("expected 2 pending adds, got %d", stats.PendingAdds)
	}

	w.Update(0.016)
	w.Update(0.016)

	stats = w.CollectStats()
	if stats.EntityCount != 2 {
		t.Errorf("expected 2 live entities, got %d", stats.EntityCount)
	}
	if len(stats.Systems) != 1 {
		t.Fatalf("expected 1 system entry, got %d", len(stats.Systems))
	}

	s := stats.Systems[0]
	if s.Name != "sleepSystem" {
		t.Errorf("expected reflected system name, got %q", s.Name)
	}
	if s.Priority != 7 || !s.Enabled {
		t.Errorf("expected priority 7 enabled, got %+v", s)
	}
	if s.ExecutionCount != 2 {
		t.Errorf("expected 2 executions, got %d", s.ExecutionCount)
	}
	if s.MinDuration < time.Millisecond {
		t.Errorf("min duration below the sleep floor: %v", s.MinDuration)
	}
	if s.MaxDuration < s.MinDuration {
		t.Errorf("max %v below min %v", s.MaxDuration, s.MinDuration)
	}
	if s.TotalDuration < 2*time.Millisecond {
		t.Errorf("total duration below the sleep floor: %v", s.TotalDuration)
	}
	if s.AvgDuration == 0 || s.LastDuration == 0 {
		t.Errorf("avg/last not recorded: %+v", s)
	}
}

func TestCollectStatsRenderPipeline(t *testing.T) {
	w := NewWorld()

	rs := &nullRenderSystem{BaseRenderSystem: NewBaseRenderSystem(3)}
	w.AddRenderSystem(rs)

	w.Render()
	w.Render()
	w.Render()

	stats := w.CollectStats()
	if len(stats.RenderSystems) != 1 {
		t.Fatalf("expected 1 render entry, got %d", len(stats.RenderSystems))
	}
	if stats.RenderSystems[0].ExecutionCount != 3 {
		t.Errorf("expected 3 render executions, got %d", stats.RenderSystems[0].ExecutionCount)
	}
}

type nullRenderSystem struct {
	BaseRenderSystem
}

func (s *nullRenderSystem) Render(entities []*Entity) {}
