package game

import (
	"github.com/willf/bitset"
	"go.uber.org/zap"
)

// DefaultGravity is the conventional downward acceleration, applied
// per tick as a displacement proportional to dt.
const DefaultGravity float32 = -9.8

// World owns the ordered entity collection. Insertion order is render
// order; entities are never reordered or removed mid-run.
//
// Not safe for concurrent use: the simulation step and all input
// mutation happen on the single frame thread, and the renderer only
// reads derived matrices after the step completes.
type World struct {
	entities []*Entity
	physics  *bitset.BitSet
	gravity  float32
	ticks    uint64
	log      *zap.Logger
}

// NewWorld creates an empty world. The gravity constant is fixed per
// world so tests and scenes can vary it.
func NewWorld(gravity float32) *World {
	return &World{
		physics: bitset.New(0),
		gravity: gravity,
		log:     zap.NewNop(),
	}
}

func (w *World) SetLogger(log *zap.Logger) {
	w.log = log
}

func (w *World) Gravity() float32 {
	return w.gravity
}

// Add appends an entity. Physics-enabled slots are marked in the mask
// the step iterates against.
func (w *World) Add(e *Entity) {
	if e.physics {
		w.physics.Set(uint(len(w.entities)))
	}
	w.entities = append(w.entities, e)

	w.log.Debug("entity added",
		zap.String("id", e.ID.String()),
		zap.String("name", e.Name),
		zap.Bool("physics", e.physics),
	)
}

func (w *World) Entities() []*Entity {
	return w.entities
}

func (w *World) Len() int {
	return len(w.entities)
}

// Step advances the simulation by dt seconds: gravity integration and
// the ground collision check, in that order, exactly once for every
// physics-enabled entity in container order. Entities without physics
// are untouched. dt must be finite and non-negative.
func (w *World) Step(dt float32) {
	w.ticks++

	for i, e := range w.entities {
		if !w.physics.Test(uint(i)) {
			continue
		}

		e.Position.Y += w.gravity * dt

		if e.Position.Y <= 0 {
			e.Position.Y = 0
			if e.state != Grounded {
				e.state = Grounded
				w.log.Debug("entity landed",
					zap.String("name", e.Name),
					zap.Uint64("tick", w.ticks),
				)
			}
		} else {
			e.state = Airborne
		}
	}
}
