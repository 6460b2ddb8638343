// scenesim runs a scene headlessly: it loads a scene description,
// advances the simulation at a fixed rate and hands every frame to a
// debug renderer that logs instead of drawing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"scenesim/engine"
	"scenesim/game"
	"scenesim/scene"
)

// meshRegistry stands in for the asset subsystem: it hands out the
// opaque handles a renderer would associate with uploaded geometry.
type meshRegistry struct {
	handles map[string]game.MeshHandle
}

func newMeshRegistry(names ...string) *meshRegistry {
	r := &meshRegistry{handles: make(map[string]game.MeshHandle, len(names))}
	for i, n := range names {
		r.handles[n] = game.MeshHandle(i + 1)
	}
	return r
}

func (r *meshRegistry) Resolve(mesh string) (game.MeshHandle, error) {
	h, ok := r.handles[mesh]
	if !ok {
		return 0, fmt.Errorf("unknown mesh %q", mesh)
	}
	return h, nil
}

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (built-in scene when empty)")
		hz        = flag.Int("hz", 60, "simulation rate in frames per second")
		duration  = flag.Duration("duration", 0, "stop after this long (0 runs until interrupted)")
		logEvery  = flag.Int("log-every", 60, "log a frame summary every n frames")
		debug     = flag.Bool("debug", false, "verbose development logging")
	)
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	s, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal("load scene", zap.Error(err))
	}
	s.World.SetLogger(log)

	log.Info("scene loaded",
		zap.String("path", *scenePath),
		zap.Int("entities", s.World.Len()),
		zap.Float64("gravity", float64(s.World.Gravity())),
	)

	loop := engine.NewLoop(s.World, s.Camera, engine.NewDebugRenderer(log, *logEvery))
	loop.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if err := loop.Run(ctx, *hz); err != nil {
		log.Fatal("loop failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadScene(path string) (*scene.Scene, error) {
	assets := newMeshRegistry("ground", "cube")

	if path != "" {
		return scene.Load(path, assets)
	}
	return scene.Build(defaultScene(), assets)
}

// defaultScene is a ground plane and one falling cube.
func defaultScene() *scene.Config {
	return &scene.Config{
		Camera: scene.CameraConfig{
			Position: [3]float32{-0.3, 0.2, 0},
			Target:   [3]float32{0, 0, 0},
		},
		Entities: []scene.EntityConfig{
			{Name: "ground", Mesh: "ground", Position: [3]float32{0, 0, 0}},
			{Name: "cube", Mesh: "cube", Position: [3]float32{0, 1, 0}, Physics: true},
		},
	}
}
