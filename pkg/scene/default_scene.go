package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// Config holds the render settings a preset is built with
type Config struct {
	Width       int       // Image width in pixels
	Height      int       // Image height in pixels
	VFovDegrees float64   // Vertical field of view
	MaxDepth    int       // Reflection/refraction recursion limit
	Background  core.Vec3 // Color of rays that escape the scene
}

func (c Config) camera() *geometry.Camera {
	return geometry.NewCamera(mgl64.DegToRad(c.VFovDegrees), c.Width, c.Height)
}

// DefaultConfig returns the settings of the default scene
func DefaultConfig() Config {
	return Config{
		Width:       1920,
		Height:      1080,
		VFovDegrees: 60,
		MaxDepth:    4,
		Background:  core.NewVec3(0.2, 0.7, 0.8),
	}
}

// NewDefaultScene creates four balls (ivory, glass, red rubber, mirror) over
// a green and blue checkerboard floor, lit by three lights
func NewDefaultScene(cfg Config) *Scene {
	s := NewScene(cfg.Background, cfg.camera(), cfg.MaxDepth)

	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2), material.Ivory))
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2), material.Glass))
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3), material.RedRubber))
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(7, 5, -18), 4), material.Mirror))

	s.AddLight(NewLight(core.NewVec3(-20, 20, 20), 1.5))
	s.AddLight(NewLight(core.NewVec3(-30, -50, -25), 1.8))
	s.AddLight(NewLight(core.NewVec3(30, 20, 30), 1.7))

	addCheckerboardFloor(s, -5, 4, material.GreenTile, material.BlueTile)
	return s
}

// SingleSphereConfig returns the settings of the single sphere scene
func SingleSphereConfig() Config {
	return Config{
		Width:       10,
		Height:      10,
		VFovDegrees: 60,
		MaxDepth:    1,
		Background:  core.Zero,
	}
}

// NewSingleSphereScene creates one white diffuse unit sphere five units in
// front of the camera with a light at the camera position
func NewSingleSphereScene(cfg Config) *Scene {
	s := NewScene(cfg.Background, cfg.camera(), cfg.MaxDepth)

	white := material.NewMaterial(core.One, 1, 1, material.Albedo{Diffuse: 1})
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), white))
	s.AddLight(NewLight(core.Zero, 1))
	return s
}

// CheckerboardConfig returns the settings of the checkerboard scene
func CheckerboardConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 640, 480
	return cfg
}

// NewCheckerboardScene creates the default floor with a single light and no balls
func NewCheckerboardScene(cfg Config) *Scene {
	s := NewScene(cfg.Background, cfg.camera(), cfg.MaxDepth)
	s.AddLight(NewLight(core.NewVec3(0, 20, 0), 1.5))
	addCheckerboardFloor(s, -5, 4, material.GreenTile, material.BlueTile)
	return s
}

// GlassConfig returns the settings of the glass scene
func GlassConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 640, 480
	cfg.MaxDepth = 6
	return cfg
}

// NewGlassScene creates a glass ball in front of a mirror and a red ball,
// deep enough in recursion to show refraction through the glass
func NewGlassScene(cfg Config) *Scene {
	s := NewScene(cfg.Background, cfg.camera(), cfg.MaxDepth)

	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, -2, -10), 2), material.Glass))
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(-3, 0, -20), 4), material.Mirror))
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(4, -2, -18), 3), material.RedRubber))

	s.AddLight(NewLight(core.NewVec3(-20, 20, 20), 1.5))
	s.AddLight(NewLight(core.NewVec3(30, 20, 30), 1.7))

	addCheckerboardFloor(s, -5, 3, material.GreenTile, material.BlueTile)
	return s
}

// addCheckerboardFloor adds both parities of a floor at height y
func addCheckerboardFloor(s *Scene, y, tileSize float64, even, odd *material.Material) {
	s.AddCheckerboardFragment(NewCheckerboard(geometry.NewCheckerboardFragment(y, tileSize, true), even))
	s.AddCheckerboardFragment(NewCheckerboard(geometry.NewCheckerboardFragment(y, tileSize, false), odd))
}
