// Package scene builds a game.World and game.Camera from a declarative
// YAML scene description. Mesh names are resolved to opaque handles by
// the caller's asset subsystem; the scene loader never touches assets
// itself.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scenesim/game"
	"scenesim/math32"
)

// AssetResolver maps a mesh name from the scene file to the opaque
// handle the renderer knows it by.
type AssetResolver interface {
	Resolve(mesh string) (game.MeshHandle, error)
}

// ResolverFunc adapts a plain function to AssetResolver.
type ResolverFunc func(mesh string) (game.MeshHandle, error)

func (f ResolverFunc) Resolve(mesh string) (game.MeshHandle, error) {
	return f(mesh)
}

type Config struct {
	// Gravity defaults to game.DefaultGravity when omitted.
	Gravity  *float32       `yaml:"gravity,omitempty"`
	Camera   CameraConfig   `yaml:"camera"`
	Entities []EntityConfig `yaml:"entities"`
}

type CameraConfig struct {
	Position [3]float32  `yaml:"position,flow"`
	Target   [3]float32  `yaml:"target,flow"`
	Up       *[3]float32 `yaml:"up,omitempty,flow"`

	// nil means "use the default"; an explicit zero is kept and
	// rejected by validation.
	FovyDegrees *float32       `yaml:"fovy_degrees,omitempty"`
	Near        *float32       `yaml:"near,omitempty"`
	Far         *float32       `yaml:"far,omitempty"`
	Viewport    ViewportConfig `yaml:"viewport"`
}

type ViewportConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type EntityConfig struct {
	Name     string      `yaml:"name"`
	Mesh     string      `yaml:"mesh"`
	Position [3]float32  `yaml:"position,flow"`
	Scale    *[3]float32 `yaml:"scale,omitempty,flow"`
	Physics  bool        `yaml:"physics,omitempty"`
}

// Scene is a fully constructed world plus its camera.
type Scene struct {
	World  *game.World
	Camera *game.Camera
}

// Load reads and builds a scene file.
func Load(path string, assets AssetResolver) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	return Parse(data, assets)
}

// Parse decodes a YAML scene document and builds it.
func Parse(data []byte, assets AssetResolver) (*Scene, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return Build(&cfg, assets)
}

// Build validates a decoded config and constructs the scene. Entities
// keep the order they were declared in; that order is render order.
func Build(cfg *Config, assets AssetResolver) (*Scene, error) {
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	gravity := game.DefaultGravity
	if cfg.Gravity != nil {
		gravity = *cfg.Gravity
	}
	world := game.NewWorld(gravity)

	cam := game.NewCamera(cfg.Camera.Viewport.Width, cfg.Camera.Viewport.Height)
	cam.SetPosition(v3(cfg.Camera.Position))
	cam.SetTarget(v3(cfg.Camera.Target))
	cam.SetUp(v3(*cfg.Camera.Up))
	cam.SetLens(*cfg.Camera.FovyDegrees*math32.Deg2Rad, *cfg.Camera.Near, *cfg.Camera.Far)

	for _, ec := range cfg.Entities {
		handle, err := assets.Resolve(ec.Mesh)
		if err != nil {
			return nil, fmt.Errorf("resolve mesh %q for entity %q: %w", ec.Mesh, ec.Name, err)
		}

		e := game.NewEntity(ec.Name, v3(ec.Position), handle, ec.Physics)
		if ec.Scale != nil {
			e.Scale = v3(*ec.Scale)
		}
		world.Add(e)
	}

	return &Scene{World: world, Camera: cam}, nil
}

func applyDefaults(cfg *Config) {
	c := &cfg.Camera
	if c.Up == nil {
		c.Up = &[3]float32{0, 1, 0}
	}
	if c.FovyDegrees == nil {
		c.FovyDegrees = f32ptr(45)
	}
	if c.Near == nil {
		c.Near = f32ptr(0.1)
	}
	if c.Far == nil {
		c.Far = f32ptr(1000)
	}
	if c.Viewport.Width == 0 && c.Viewport.Height == 0 {
		c.Viewport = ViewportConfig{Width: 1920, Height: 1080}
	}
}

func validate(cfg *Config) error {
	c := &cfg.Camera

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("scene: viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if *c.Far <= *c.Near {
		return fmt.Errorf("scene: far (%g) must exceed near (%g)", *c.Far, *c.Near)
	}
	if *c.FovyDegrees <= 0 || *c.FovyDegrees >= 180 {
		return fmt.Errorf("scene: fovy_degrees must be in (0, 180), got %g", *c.FovyDegrees)
	}

	look := v3(c.Target).Sub(v3(c.Position))
	if look.Cross(v3(*c.Up)).Length() == 0 {
		return fmt.Errorf("scene: up vector is parallel to the view direction")
	}

	for i, e := range cfg.Entities {
		if e.Name == "" {
			return fmt.Errorf("scene: entity %d has no name", i)
		}
		if e.Mesh == "" {
			return fmt.Errorf("scene: entity %q has no mesh", e.Name)
		}
	}
	return nil
}

func v3(a [3]float32) math32.Vector3 {
	return math32.V3(a[0], a[1], a[2])
}

func f32ptr(v float32) *float32 {
	return &v
}
