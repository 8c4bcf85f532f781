package ecs

// ComponentKind identifies a component's kind. Kinds are the query
// keys of the whole core: systems declare required kinds and World
// queries filter by them, so producers and consumers must share the
// same constants. A mistyped kind silently yields unmatched entities
// rather than an error.
type ComponentKind string

// Component is a plain data record attached to an entity under its
// declared kind. Implementations should be pointer types so that
// systems observe each other's in-place writes within a frame.
type Component interface {
	Kind() ComponentKind
}

// Get reads a component of the given kind with its concrete type.
// It returns the zero value and false when the entity lacks the kind
// or when the stored value is not a T.
func Get[T Component](e *Entity, kind ComponentKind) (T, bool) {
	var zero T
	c, ok := e.Component(kind)
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
