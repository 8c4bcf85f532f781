package ecs_test

import (
	"testing"

	"github.com/plus3/worldkit/ecs"
)

func TestMatchesIsPureAnd(t *testing.T) {
	s := newRecordingSystem("s", 0, nil, ecs.KindPosition, ecs.KindVelocity)

	e := ecs.NewEntity().AddComponent(&ecs.Position{})
	if ecs.Matches(s, e) {
		t.Error("entity missing velocity must not match {position, velocity}")
	}

	e.AddComponent(&ecs.Velocity{})
	if !ecs.Matches(s, e) {
		t.Error("entity with both kinds must match")
	}

	empty := newRecordingSystem("empty", 0, nil)
	if !ecs.Matches(empty, ecs.NewEntity()) {
		t.Error("a system with no requirements matches every entity")
	}
}

func TestSystemReceivesMatchingSubset(t *testing.T) {
	w := ecs.NewWorld()
	s := newRecordingSystem("movement", 0, nil, ecs.KindPosition)
	w.AddSystem(s)

	w.CreateEntity().AddComponent(&ecs.Position{})
	w.CreateEntity().AddComponent(&ecs.Position{})
	w.CreateEntity().AddComponent(&ecs.Health{Current: 1, Max: 1})

	w.Update(0.016)

	if s.updateCount != 1 {
		t.Fatalf("expected one dispatch, got %d", s.updateCount)
	}
	if len(s.lastSeen) != 2 {
		t.Errorf("expected 2 matching entities, got %d", len(s.lastSeen))
	}
	for _, e := range s.lastSeen {
		if !e.HasComponent(ecs.KindPosition) {
			t.Error("system observed a non-matching entity")
		}
	}
	if s.lastDt != 0.016 {
		t.Errorf("expected dt 0.016, got %f", s.lastDt)
	}
}

func TestPriorityOrderWithStableTies(t *testing.T) {
	w := ecs.NewWorld()
	var log []string

	w.AddSystem(newRecordingSystem("late", 20, &log))
	w.AddSystem(newRecordingSystem("early", 5, &log))
	w.AddSystem(newRecordingSystem("tie-a", 10, &log))
	w.AddSystem(newRecordingSystem("tie-b", 10, &log))

	w.Update(0.016)

	want := []string{"early", "tie-a", "tie-b", "late"}
	if len(log) != len(want) {
		t.Fatalf("expected %d dispatches, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("dispatch order %v, want %v", log, want)
		}
	}
}

func TestDisabledSystemSkipped(t *testing.T) {
	w := ecs.NewWorld()
	s := newRecordingSystem("s", 0, nil)
	w.AddSystem(s)

	s.SetEnabled(false)
	w.Update(0.016)
	if s.updateCount != 0 {
		t.Error("disabled system must not be dispatched")
	}

	s.SetEnabled(true)
	w.Update(0.016)
	if s.updateCount != 1 {
		t.Error("re-enabled system must be dispatched again")
	}
}

func TestInitAndDestroyCalledOnce(t *testing.T) {
	w := ecs.NewWorld()
	s := newRecordingSystem("s", 0, nil)

	w.AddSystem(s)
	w.AddSystem(s) // duplicate registration is a silent no-op

	if s.initCount != 1 {
		t.Errorf("expected one Init call, got %d", s.initCount)
	}

	w.RemoveSystem(s)
	w.RemoveSystem(s) // unregistered removal is a no-op

	if s.destroyCount != 1 {
		t.Errorf("expected one Destroy call, got %d", s.destroyCount)
	}
}

func TestRemovedSystemNoLongerDispatched(t *testing.T) {
	w := ecs.NewWorld()
	s := newRecordingSystem("s", 0, nil, ecs.KindPosition)
	w.AddSystem(s)

	e := w.CreateEntity().AddComponent(&ecs.Position{X: 1})
	w.Update(0.016)
	if s.updateCount != 1 {
		t.Fatal("expected a dispatch before removal")
	}

	w.RemoveSystem(s)
	w.Update(0.016)
	w.Render()

	if s.updateCount != 1 {
		t.Error("removed system was dispatched")
	}
	if _, ok := w.GetEntity(e.Id()); !ok {
		t.Error("removing a system must not affect live entities")
	}
}

func TestRenderPipelineIndependent(t *testing.T) {
	w := ecs.NewWorld()
	var log []string

	logic := newRecordingSystem("logic", 0, &log)
	render := newRecordingRenderSystem("render", 0, &log, ecs.KindRenderable)
	w.AddSystem(logic)
	w.AddRenderSystem(render)

	w.CreateEntity().AddComponent(&ecs.Renderable{Visible: true})
	w.CreateEntity() // no renderable

	w.Update(0.016)
	if render.renderCount != 0 {
		t.Error("render systems must not run during Update")
	}

	w.Render()
	if logic.updateCount != 1 {
		t.Error("logic systems must not run during Render")
	}
	if render.renderCount != 1 {
		t.Fatal("expected one render dispatch")
	}
	if len(render.lastSeen) != 1 {
		t.Errorf("render filtering must use required kinds, got %d entities", len(render.lastSeen))
	}
}

func TestRegisteredInstanceBelongsToOneList(t *testing.T) {
	w := ecs.NewWorld()
	r := newRecordingRenderSystem("r", 0, nil)

	w.AddRenderSystem(r)
	w.AddSystem(r) // already registered as a render system: no-op

	w.Update(0.016)
	w.Render()

	if r.renderCount != 1 {
		t.Errorf("expected one render dispatch, got %d", r.renderCount)
	}
	// A single registration means a single Destroy on removal.
	w.RemoveSystem(r)
	if r.destroyCount != 1 {
		t.Errorf("expected one Destroy, got %d", r.destroyCount)
	}
}

func TestMidFrameComponentWritesVisible(t *testing.T) {
	w := ecs.NewWorld()

	e := w.CreateEntity().AddComponent(&ecs.Health{Current: 10, Max: 10})

	var observed int
	writer := newHookSystem(1, func(entities []*ecs.Entity, dt float64) {
		hp, _ := ecs.Get[*ecs.Health](entities[0], ecs.KindHealth)
		hp.Current = 3
	}, ecs.KindHealth)
	reader := newHookSystem(2, func(entities []*ecs.Entity, dt float64) {
		hp, _ := ecs.Get[*ecs.Health](entities[0], ecs.KindHealth)
		observed = hp.Current
	}, ecs.KindHealth)

	w.AddSystem(writer)
	w.AddSystem(reader)
	w.Update(0.016)

	if observed != 3 {
		t.Errorf("later system must see earlier system's write, observed %d", observed)
	}
	hp, _ := ecs.Get[*ecs.Health](e, ecs.KindHealth)
	if hp.Current != 3 {
		t.Errorf("write must persist on the entity, got %d", hp.Current)
	}
}

func TestMidFrameSpawnsInvisibleUntilNextFrame(t *testing.T) {
	w := ecs.NewWorld()

	var counts []int
	spawner := newHookSystem(1, func(entities []*ecs.Entity, dt float64) {
		w.CreateEntity().AddComponent(&ecs.Position{})
	})
	counter := newHookSystem(2, func(entities []*ecs.Entity, dt float64) {
		counts = append(counts, len(entities))
	}, ecs.KindPosition)

	w.AddSystem(spawner)
	w.AddSystem(counter)

	w.Update(0.016) // spawner queues one entity; counter sees none
	w.Update(0.016) // the spawn commits; spawner queues another

	if len(counts) != 2 || counts[0] != 0 || counts[1] != 1 {
		t.Errorf("same-frame spawns must stay invisible until the next commit, got %v", counts)
	}
}
