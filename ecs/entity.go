package ecs

// EntityId is a process-unique, monotonically increasing identifier.
// Ids are assigned by the owning World and are never reused until the
// World is cleared.
type EntityId uint64

// Entity is an identity plus a bag of components and a set of string
// tags. It carries no behavior of its own; all mutation of component
// data is performed by systems. Entities are not safe for concurrent
// use; the whole core assumes a single logical thread of control.
type Entity struct {
	id         EntityId
	components map[ComponentKind]Component
	tags       map[string]struct{}
}

// NewEntity creates a detached entity with no id. The id is assigned
// when the entity is handed to a World via AddEntity.
func NewEntity() *Entity {
	return &Entity{
		components: make(map[ComponentKind]Component, 8),
		tags:       make(map[string]struct{}, 4),
	}
}

// Id returns the entity's identifier, or 0 for a detached entity that
// has not yet been queued on a World.
func (e *Entity) Id() EntityId {
	return e.id
}

// AddComponent upserts a component under its declared kind and returns
// the entity for call chaining during construction. A kind maps to at
// most one value; the last write wins.
func (e *Entity) AddComponent(c Component) *Entity {
	e.components[c.Kind()] = c
	return e
}

// Component returns the component of the given kind. Absence is a
// normal outcome, reported through the second return value.
func (e *Entity) Component(kind ComponentKind) (Component, bool) {
	c, ok := e.components[kind]
	return c, ok
}

// HasComponent reports whether a component of the given kind is attached.
func (e *Entity) HasComponent(kind ComponentKind) bool {
	_, ok := e.components[kind]
	return ok
}

// RemoveComponent detaches the component of the given kind and reports
// whether one was present.
func (e *Entity) RemoveComponent(kind ComponentKind) bool {
	if _, ok := e.components[kind]; !ok {
		return false
	}
	delete(e.components, kind)
	return true
}

// ComponentKinds returns the kinds currently attached, in no
// particular order.
func (e *Entity) ComponentKinds() []ComponentKind {
	kinds := make([]ComponentKind, 0, len(e.components))
	for kind := range e.components {
		kinds = append(kinds, kind)
	}
	return kinds
}

// AddTag adds a string tag and returns the entity for chaining.
// Tags are a set: adding twice is idempotent.
func (e *Entity) AddTag(tag string) *Entity {
	e.tags[tag] = struct{}{}
	return e
}

// HasTag reports whether the tag is present.
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// RemoveTag removes the tag and reports whether it was present.
func (e *Entity) RemoveTag(tag string) bool {
	if _, ok := e.tags[tag]; !ok {
		return false
	}
	delete(e.tags, tag)
	return true
}

// Tags returns the attached tags, in no particular order.
func (e *Entity) Tags() []string {
	tags := make([]string, 0, len(e.tags))
	for tag := range e.tags {
		tags = append(tags, tag)
	}
	return tags
}
