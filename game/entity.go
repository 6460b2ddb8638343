package game

import (
	"github.com/google/uuid"

	"scenesim/math32"
)

// MeshHandle is an opaque reference to renderer-owned geometry. It is
// assigned by the asset subsystem at scene construction time and never
// interpreted here.
type MeshHandle uint32

// PhysicsState tracks where a physics-enabled entity stands relative
// to the ground plane at y = 0.
type PhysicsState uint8

const (
	Grounded PhysicsState = iota
	Airborne
)

func (s PhysicsState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

// Entity is a simulated world object: a position and non-uniform scale
// in world space, an opaque mesh reference for the renderer, and an
// optional physics behavior.
type Entity struct {
	ID   uuid.UUID
	Name string

	Position math32.Vector3
	Scale    math32.Vector3
	Mesh     MeshHandle

	physics bool
	state   PhysicsState
}

func NewEntity(name string, position math32.Vector3, mesh MeshHandle, physics bool) *Entity {
	e := &Entity{
		ID:       uuid.New(),
		Name:     name,
		Position: position,
		Scale:    math32.V3(1, 1, 1),
		Mesh:     mesh,
		physics:  physics,
	}
	if physics && position.Y > 0 {
		e.state = Airborne
	}
	return e
}

func (e *Entity) PhysicsEnabled() bool {
	return e.physics
}

func (e *Entity) State() PhysicsState {
	return e.state
}

// Transform is the entity's world matrix: scale in local space, then
// translation to world space.
func (e *Entity) Transform() math32.Matrix4 {
	return math32.FromTranslation(e.Position).Mul(math32.FromScale(e.Scale))
}

func (e *Entity) MoveX(dt, rate float32) {
	e.Position.X += rate * dt
}

func (e *Entity) MoveY(dt, rate float32) {
	e.Position.Y += rate * dt
}

func (e *Entity) MoveZ(dt, rate float32) {
	e.Position.Z += rate * dt
}

// Jump applies an upward displacement of impulse*dt and lifts the
// entity into the air. Honored only while grounded; further requests
// are ignored until the entity lands again. Reports whether the jump
// was taken.
func (e *Entity) Jump(dt, impulse float32) bool {
	if !e.physics || e.state != Grounded {
		return false
	}

	e.Position.Y += impulse * dt
	e.state = Airborne
	return true
}
