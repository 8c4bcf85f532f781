package ecs_test

import (
	"testing"

	"github.com/plus3/worldkit/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityComponentLifecycle(t *testing.T) {
	e := ecs.NewEntity()

	assert.False(t, e.HasComponent(ecs.KindPosition))
	_, ok := e.Component(ecs.KindPosition)
	assert.False(t, ok)

	e.AddComponent(&ecs.Position{X: 3, Y: 4})
	assert.True(t, e.HasComponent(ecs.KindPosition))

	pos, ok := ecs.Get[*ecs.Position](e, ecs.KindPosition)
	assert.True(t, ok)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)

	assert.True(t, e.RemoveComponent(ecs.KindPosition))
	assert.False(t, e.HasComponent(ecs.KindPosition))
	assert.False(t, e.RemoveComponent(ecs.KindPosition))
}

func TestEntityComponentUpsert(t *testing.T) {
	e := ecs.NewEntity()
	e.AddComponent(&ecs.Health{Current: 10, Max: 10})
	e.AddComponent(&ecs.Health{Current: 5, Max: 20})

	hp, ok := ecs.Get[*ecs.Health](e, ecs.KindHealth)
	assert.True(t, ok)
	assert.Equal(t, 5, hp.Current)
	assert.Equal(t, 20, hp.Max)
	assert.Len(t, e.ComponentKinds(), 1)
}

func TestEntityChaining(t *testing.T) {
	e := ecs.NewEntity().
		AddComponent(&ecs.Position{X: 1}).
		AddComponent(&ecs.Velocity{DX: 2}).
		AddTag("enemy")

	assert.True(t, e.HasComponent(ecs.KindPosition))
	assert.True(t, e.HasComponent(ecs.KindVelocity))
	assert.True(t, e.HasTag("enemy"))
	assert.ElementsMatch(t, []ecs.ComponentKind{ecs.KindPosition, ecs.KindVelocity}, e.ComponentKinds())
}

func TestEntityTags(t *testing.T) {
	e := ecs.NewEntity()

	assert.False(t, e.HasTag("boss"))
	e.AddTag("boss")
	e.AddTag("boss")
	assert.True(t, e.HasTag("boss"))
	assert.Len(t, e.Tags(), 1)

	assert.True(t, e.RemoveTag("boss"))
	assert.False(t, e.HasTag("boss"))
	assert.False(t, e.RemoveTag("boss"))
}

func TestEntityTypedGetMismatch(t *testing.T) {
	e := ecs.NewEntity()
	e.AddComponent(&ecs.Position{X: 1})

	// Wrong concrete type for the stored kind.
	_, ok := ecs.Get[*ecs.Velocity](e, ecs.KindPosition)
	assert.False(t, ok)
}

func TestDetachedEntityHasNoId(t *testing.T) {
	e := ecs.NewEntity()
	assert.Equal(t, ecs.EntityId(0), e.Id())

	w := ecs.NewWorld()
	w.AddEntity(e)
	assert.NotEqual(t, ecs.EntityId(0), e.Id())
}
