package ecs

import (
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// World owns every entity and system and drives per-frame dispatch.
// It is the sole root of ownership: once an entity's removal commits,
// the World drops its reference and stale holders must tolerate the
// entity no longer appearing in queries.
//
// Entity creation and removal are deferred. Entities queued through
// CreateEntity/AddEntity become live (visible to systems and queries)
// at the start of the next Update call; removals queued through
// RemoveEntity commit right after, adds before removes. This gives
// every system within a frame a stable view of who exists while still
// letting in-place component writes flow to systems that run later in
// priority order.
//
// A World is single-threaded by contract. Concurrent use must be
// serialized by the caller.
type World struct {
	nextId EntityId

	entities *intmap.Map[EntityId, *Entity]
	live     []*Entity

	systems       []*systemEntry
	renderSystems []*renderEntry

	pendingAdd    []*Entity
	pendingRemove []EntityId
}

type systemEntry struct {
	sys   System
	stats systemTimings
}

type renderEntry struct {
	sys   RenderSystem
	stats systemTimings
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		entities: intmap.New[EntityId, *Entity](256),
	}
}

// CreateEntity allocates a fresh id, queues the entity for addition,
// and returns it immediately so the caller can attach components and
// tags before it goes live on the next Update.
func (w *World) CreateEntity() *Entity {
	e := NewEntity()
	w.nextId++
	e.id = w.nextId
	w.pendingAdd = append(w.pendingAdd, e)
	return e
}

// AddEntity queues a pre-built entity for addition with the same
// timing as CreateEntity. A detached entity (id 0) is assigned the
// next id here.
func (w *World) AddEntity(e *Entity) {
	if e.id == 0 {
		w.nextId++
		e.id = w.nextId
	}
	w.pendingAdd = append(w.pendingAdd, e)
}

// RemoveEntity queues an entity for removal on the next Update.
// Unknown or already-queued ids are fine; the operation is idempotent.
func (w *World) RemoveEntity(id EntityId) {
	w.pendingRemove = append(w.pendingRemove, id)
}

// GetEntity returns the live entity with the given id. Pending-add
// entities are not visible until committed; pending-remove entities
// remain visible until committed.
func (w *World) GetEntity(id EntityId) (*Entity, bool) {
	return w.entities.Get(id)
}

// AllEntities returns the live entities. The returned slice is a copy;
// iteration order is stable for a given snapshot but otherwise
// unspecified.
func (w *World) AllEntities() []*Entity {
	return slices.Clone(w.live)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.live)
}

// EntitiesByTag returns the live entities carrying the tag. Linear
// scan; entity counts here are hundreds, not millions.
func (w *World) EntitiesByTag(tag string) []*Entity {
	var out []*Entity
	for _, e := range w.live {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesWith returns the live entities carrying every one of the
// given component kinds, the same AND semantics systems match with.
func (w *World) EntitiesWith(kinds ...ComponentKind) []*Entity {
	var out []*Entity
outer:
	for _, e := range w.live {
		for _, kind := range kinds {
			if !e.HasComponent(kind) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// AddSystem registers a logic system: Init runs immediately and the
// logic list is re-sorted stably by ascending priority, so equal
// priorities keep registration order. Registering an instance that is
// already present in either list is a no-op.
func (w *World) AddSystem(s System) {
	if w.registered(s) {
		return
	}
	s.Init(w)
	w.systems = append(w.systems, &systemEntry{
		sys:   s,
		stats: newSystemTimings(s),
	})
	slices.SortStableFunc(w.systems, func(a, b *systemEntry) int {
		return a.sys.Priority() - b.sys.Priority()
	})
}

// AddRenderSystem registers a render system into the render list with
// the same lifecycle and ordering rules as AddSystem. A system
// instance belongs to exactly one list; which one is decided here, at
// the call site, never inferred from the value's runtime type.
func (w *World) AddRenderSystem(s RenderSystem) {
	if w.registered(s) {
		return
	}
	s.Init(w)
	w.renderSystems = append(w.renderSystems, &renderEntry{
		sys:   s,
		stats: newSystemTimings(s),
	})
	slices.SortStableFunc(w.renderSystems, func(a, b *renderEntry) int {
		return a.sys.Priority() - b.sys.Priority()
	})
}

// RemoveSystem calls Destroy on the system and removes it from
// whichever list holds it. Removing an unregistered system is a no-op.
func (w *World) RemoveSystem(s System) {
	for i, entry := range w.systems {
		if entry.sys == s {
			entry.sys.Destroy()
			w.systems = slices.Delete(w.systems, i, i+1)
			return
		}
	}
	for i, entry := range w.renderSystems {
		if System(entry.sys) == s {
			entry.sys.Destroy()
			w.renderSystems = slices.Delete(w.renderSystems, i, i+1)
			return
		}
	}
}

// Systems returns the registered logic systems in dispatch order.
// The slice is a copy; the systems themselves are shared.
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	for i, entry := range w.systems {
		out[i] = entry.sys
	}
	return out
}

// RenderSystems returns the registered render systems in dispatch order.
func (w *World) RenderSystems() []RenderSystem {
	out := make([]RenderSystem, len(w.renderSystems))
	for i, entry := range w.renderSystems {
		out[i] = entry.sys
	}
	return out
}

func (w *World) registered(s System) bool {
	for _, entry := range w.systems {
		if entry.sys == s {
			return true
		}
	}
	for _, entry := range w.renderSystems {
		if System(entry.sys) == s {
			return true
		}
	}
	return false
}

// Update runs one logic frame: commit queued adds, then queued
// removes, then dispatch every enabled logic system in priority order
// against a single snapshot of the live set. The snapshot is not
// refreshed mid-frame: systems running later see earlier systems'
// component writes (shared entity pointers) but never their entity
// adds or removes, which commit next frame.
func (w *World) Update(dt float64) {
	w.commitPending()

	snapshot := slices.Clone(w.live)
	for _, entry := range w.systems {
		if !entry.sys.Enabled() {
			continue
		}
		matched := filterMatching(entry.sys, snapshot)
		start := time.Now()
		entry.sys.Update(matched, dt)
		entry.stats.record(time.Since(start))
	}
}

// Render dispatches the render-system list against the current live
// set. It commits no entity lifecycle changes, so calling Render
// without Update is legal and advances nothing.
func (w *World) Render() {
	snapshot := slices.Clone(w.live)
	for _, entry := range w.renderSystems {
		if !entry.sys.Enabled() {
			continue
		}
		matched := filterMatching(entry.sys, snapshot)
		start := time.Now()
		entry.sys.Render(matched)
		entry.stats.record(time.Since(start))
	}
}

// Clear hard-resets the World for a new session: every system is
// destroyed (logic list first, then render), all entities and queues
// are dropped, and the id counter restarts. This is the only
// operation after which ids are reused.
func (w *World) Clear() {
	for _, entry := range w.systems {
		entry.sys.Destroy()
	}
	for _, entry := range w.renderSystems {
		entry.sys.Destroy()
	}
	w.systems = nil
	w.renderSystems = nil

	w.entities.Clear()
	w.live = w.live[:0]
	w.pendingAdd = nil
	w.pendingRemove = nil
	w.nextId = 0
}

func (w *World) commitPending() {
	for _, e := range w.pendingAdd {
		if _, ok := w.entities.Get(e.id); ok {
			continue
		}
		w.entities.Put(e.id, e)
		w.live = append(w.live, e)
	}
	w.pendingAdd = w.pendingAdd[:0]

	for _, id := range w.pendingRemove {
		if _, ok := w.entities.Get(id); !ok {
			continue
		}
		w.entities.Del(id)
		for i, e := range w.live {
			if e.id == id {
				w.live = slices.Delete(w.live, i, i+1)
				break
			}
		}
	}
	w.pendingRemove = w.pendingRemove[:0]
}

func filterMatching(s System, snapshot []*Entity) []*Entity {
	matched := make([]*Entity, 0, len(snapshot))
	for _, e := range snapshot {
		if Matches(s, e) {
			matched = append(matched, e)
		}
	}
	return matched
}
