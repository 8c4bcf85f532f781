package ecs

// Built-in component kinds. These are the shared constants gameplay
// modules key their queries on; consumers are free to declare further
// kinds alongside them.
const (
	KindPosition      ComponentKind = "position"
	KindVelocity      ComponentKind = "velocity"
	KindHealth        ComponentKind = "health"
	KindCollider      ComponentKind = "collider"
	KindRenderable    ComponentKind = "renderable"
	KindPlayerControl ComponentKind = "player-control"
	KindAI            ComponentKind = "ai"
	KindBullet        ComponentKind = "bullet"
	KindLifetime      ComponentKind = "lifetime"
)

// Position is a location in world space.
type Position struct {
	X, Y float64
}

func (*Position) Kind() ComponentKind { return KindPosition }

// Velocity is a rate of positional change in units per second.
type Velocity struct {
	DX, DY float64
}

func (*Velocity) Kind() ComponentKind { return KindVelocity }

// Health tracks current and maximum hit points.
type Health struct {
	Current int
	Max     int
}

func (*Health) Kind() ComponentKind { return KindHealth }

// Collider is a circle collider. Layer is the layer this entity
// occupies; Mask lists the layers it collides with.
type Collider struct {
	Radius float64
	Layer  uint8
	Mask   []uint8
}

func (*Collider) Kind() ComponentKind { return KindCollider }

// Renderable describes how an entity is drawn. The core attaches no
// meaning to these fields; render systems interpret them.
type Renderable struct {
	Sprite  string
	Color   [4]uint8
	Radius  float64
	Visible bool
}

func (*Renderable) Kind() ComponentKind { return KindRenderable }

// PlayerControl marks an entity as driven by player input.
type PlayerControl struct{}

func (*PlayerControl) Kind() ComponentKind { return KindPlayerControl }

// AI holds behavior state for computer-controlled entities.
type AI struct {
	State     string
	Target    EntityId
	NextThink float64
}

func (*AI) Kind() ComponentKind { return KindAI }

// Bullet is projectile state.
type Bullet struct {
	Damage int
	Owner  EntityId
}

func (*Bullet) Kind() ComponentKind { return KindBullet }

// Lifetime expires an entity after Duration seconds of game time,
// counted from CreatedAt. Both are in the host loop's time base.
type Lifetime struct {
	CreatedAt float64
	Duration  float64
}

func (*Lifetime) Kind() ComponentKind { return KindLifetime }
