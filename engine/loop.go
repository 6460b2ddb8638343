package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scenesim/game"
)

// Loop drives the frame cycle: advance the world, derive the camera
// and entity matrices, hand the snapshot to the renderer. Everything
// runs on the calling goroutine, so within a frame the simulation
// strictly happens before the render.
type Loop struct {
	world    *game.World
	camera   *game.Camera
	renderer Renderer
	log      *zap.Logger

	frame  Frame
	frames uint64
}

func NewLoop(world *game.World, camera *game.Camera, renderer Renderer) *Loop {
	return &Loop{
		world:    world,
		camera:   camera,
		renderer: renderer,
		log:      zap.NewNop(),
	}
}

func (l *Loop) SetLogger(log *zap.Logger) {
	l.log = log
}

func (l *Loop) Frames() uint64 {
	return l.frames
}

// Tick runs one frame with the supplied delta time in seconds. dt
// comes from an external frame clock and must be finite and
// non-negative.
func (l *Loop) Tick(dt float32) error {
	l.world.Step(dt)

	l.frame.ViewProjection = l.camera.ViewProjection()
	l.frame.Instances = l.frame.Instances[:0]
	for _, e := range l.world.Entities() {
		l.frame.Instances = append(l.frame.Instances, Instance{
			Mesh:      e.Mesh,
			Transform: e.Transform(),
		})
	}

	l.frames++
	if err := l.renderer.Render(&l.frame); err != nil {
		return fmt.Errorf("render frame %d: %w", l.frames, err)
	}
	return nil
}

// Run ticks at the given rate with measured deltas until the context
// is cancelled.
func (l *Loop) Run(ctx context.Context, hz int) error {
	if hz <= 0 {
		hz = 60
	}

	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	l.log.Info("loop started", zap.Int("hz", hz), zap.Int("entities", l.world.Len()))

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop stopped", zap.Uint64("frames", l.frames))
			return nil
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now

			if err := l.Tick(dt); err != nil {
				return err
			}
		}
	}
}
