// Package engine is the boundary between the simulation core and a
// renderer. The core hands over plain numeric data only: a combined
// camera matrix and one world transform per entity, ready to be copied
// into GPU uniform buffers by whatever rasterizer sits behind the
// Renderer interface.
package engine

import (
	"go.uber.org/zap"

	"scenesim/game"
	"scenesim/math32"
)

// Instance is one drawable entity for the current frame.
type Instance struct {
	Mesh      game.MeshHandle
	Transform math32.Matrix4
}

// Frame is the per-frame snapshot a renderer consumes. Instances are
// in world insertion order, which is render order.
type Frame struct {
	ViewProjection math32.Matrix4
	Instances      []Instance
}

// Renderer consumes one frame snapshot. Implementations own all GPU
// state; the core never sees it.
type Renderer interface {
	Render(frame *Frame) error
}

// DebugRenderer is a headless Renderer that periodically logs frame
// summaries instead of drawing.
type DebugRenderer struct {
	log   *zap.Logger
	every uint64
	seen  uint64
}

// NewDebugRenderer logs one summary line every `every` frames; zero
// or negative disables the output entirely.
func NewDebugRenderer(log *zap.Logger, every int) *DebugRenderer {
	if every < 0 {
		every = 0
	}
	return &DebugRenderer{log: log, every: uint64(every)}
}

func (r *DebugRenderer) Render(frame *Frame) error {
	r.seen++
	if r.every == 0 || r.seen%r.every != 0 {
		return nil
	}

	fields := []zap.Field{
		zap.Uint64("frame", r.seen),
		zap.Int("instances", len(frame.Instances)),
	}
	if len(frame.Instances) > 0 {
		first := frame.Instances[0].Transform.W
		fields = append(fields, zap.String("first", first.String()))
	}
	r.log.Info("frame", fields...)

	return nil
}
