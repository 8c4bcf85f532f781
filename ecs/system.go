package ecs

// System is a unit of per-frame behavior. Each World.Update pass hands
// every enabled system the precomputed subset of live entities that
// carry all of its required component kinds, so system authors never
// filter by hand and never see non-matching entities.
//
// Init and Destroy are called exactly once each, at registration and
// at removal (or World.Clear) respectively. Panics raised by Update
// are not recovered by the core; a gameplay bug should surface, not
// be swallowed.
type System interface {
	// Priority orders dispatch; lower runs earlier. Ties preserve
	// registration order.
	Priority() int

	// Enabled reports whether the system participates in dispatch.
	// Disabled systems are skipped entirely.
	Enabled() bool

	// Requires lists the component kinds an entity must all carry to
	// match this system. An empty list matches every entity.
	Requires() []ComponentKind

	// Init is called once when the system is registered on a World.
	Init(w *World)

	// Destroy is called once when the system is removed or the World
	// is cleared.
	Destroy()

	// Update is the behavior hook, invoked once per World.Update with
	// the matching entities and the frame's delta time in seconds.
	Update(entities []*Entity, dt float64)
}

// RenderSystem is a system dispatched during World.Render instead of
// sharing the logic pass. It filters entities the same way but runs
// against the render pipeline only.
type RenderSystem interface {
	System

	// Render is invoked once per World.Render with the matching
	// entities.
	Render(entities []*Entity)
}

// Matches reports whether the entity carries every component kind the
// system requires.
func Matches(s System, e *Entity) bool {
	for _, kind := range s.Requires() {
		if !e.HasComponent(kind) {
			return false
		}
	}
	return true
}

// BaseSystem supplies the bookkeeping half of the System interface so
// concrete systems only implement Update. Embed it by value:
//
//	type MovementSystem struct {
//		ecs.BaseSystem
//	}
//
//	func NewMovementSystem() *MovementSystem {
//		return &MovementSystem{
//			BaseSystem: ecs.NewBaseSystem(10, ecs.KindPosition, ecs.KindVelocity),
//		}
//	}
type BaseSystem struct {
	priority int
	enabled  bool
	requires []ComponentKind
}

// NewBaseSystem creates an enabled BaseSystem with the given priority
// and required component kinds.
func NewBaseSystem(priority int, requires ...ComponentKind) BaseSystem {
	return BaseSystem{
		priority: priority,
		enabled:  true,
		requires: requires,
	}
}

func (s *BaseSystem) Priority() int { return s.priority }

func (s *BaseSystem) Enabled() bool { return s.enabled }

// SetEnabled toggles dispatch for this system. Disabling is the way to
// pause a system without losing its state or registration order.
func (s *BaseSystem) SetEnabled(enabled bool) { s.enabled = enabled }

func (s *BaseSystem) Requires() []ComponentKind { return s.requires }

func (s *BaseSystem) Init(*World) {}

func (s *BaseSystem) Destroy() {}

// BaseRenderSystem is BaseSystem plus a no-op Update, so a render-only
// system never implements the logic hook. It still participates in
// required-kind filtering for its Render call.
type BaseRenderSystem struct {
	BaseSystem
}

// NewBaseRenderSystem creates an enabled BaseRenderSystem with the
// given priority and required component kinds.
func NewBaseRenderSystem(priority int, requires ...ComponentKind) BaseRenderSystem {
	return BaseRenderSystem{BaseSystem: NewBaseSystem(priority, requires...)}
}

func (s *BaseRenderSystem) Update([]*Entity, float64) {}
