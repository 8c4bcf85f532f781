package ecs_test

import "github.com/plus3/worldkit/ecs"

// recordingSystem notes every dispatch so tests can assert on call
// counts, observed entities, and relative execution order.
type recordingSystem struct {
	ecs.BaseSystem

	name string
	log  *[]string

	updateCount int
	lastSeen    []*ecs.Entity
	lastDt      float64

	initCount    int
	destroyCount int
}

func newRecordingSystem(name string, priority int, log *[]string, requires ...ecs.ComponentKind) *recordingSystem {
	return &recordingSystem{
		BaseSystem: ecs.NewBaseSystem(priority, requires...),
		name:       name,
		log:        log,
	}
}

func (s *recordingSystem) Init(*ecs.World) { s.initCount++ }

func (s *recordingSystem) Destroy() { s.destroyCount++ }

func (s *recordingSystem) Update(entities []*ecs.Entity, dt float64) {
	s.updateCount++
	s.lastSeen = entities
	s.lastDt = dt
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

// recordingRenderSystem is the render-pipeline counterpart.
type recordingRenderSystem struct {
	ecs.BaseRenderSystem

	name string
	log  *[]string

	renderCount int
	lastSeen    []*ecs.Entity

	destroyCount int
}

func newRecordingRenderSystem(name string, priority int, log *[]string, requires ...ecs.ComponentKind) *recordingRenderSystem {
	return &recordingRenderSystem{
		BaseRenderSystem: ecs.NewBaseRenderSystem(priority, requires...),
		name:             name,
		log:              log,
	}
}

func (s *recordingRenderSystem) Destroy() { s.destroyCount++ }

func (s *recordingRenderSystem) Render(entities []*ecs.Entity) {
	s.renderCount++
	s.lastSeen = entities
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

// hookSystem runs a closure as its update hook.
type hookSystem struct {
	ecs.BaseSystem
	fn func(entities []*ecs.Entity, dt float64)
}

func newHookSystem(priority int, fn func([]*ecs.Entity, float64), requires ...ecs.ComponentKind) *hookSystem {
	return &hookSystem{
		BaseSystem: ecs.NewBaseSystem(priority, requires...),
		fn:         fn,
	}
}

func (s *hookSystem) Update(entities []*ecs.Entity, dt float64) {
	s.fn(entities, dt)
}
