package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3) bool {
	return mgl64.FloatEqualThreshold(a.X, b.X, tolerance) &&
		mgl64.FloatEqualThreshold(a.Y, b.Y, tolerance) &&
		mgl64.FloatEqualThreshold(a.Z, b.Z, tolerance)
}

func testCamera() *geometry.Camera {
	return geometry.NewCamera(mgl64.DegToRad(60), 10, 10)
}

var forward = core.NewRay(core.Zero, core.NewVec3(0, 0, -1))

func TestScene_ZeroDepthReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.7, 0.8)
	s := NewDefaultScene(Config{Width: 32, Height: 18, VFovDegrees: 60, MaxDepth: 4, Background: background})

	rays := []core.Ray{
		forward,
		core.NewRay(core.Zero, core.NewVec3(-3, 0, -16)),
		core.NewRay(core.Zero, core.NewVec3(0, -1, -2)),
	}
	for _, ray := range rays {
		if got := s.ColorOfRay(ray, 0); got != background {
			t.Errorf("Expected background %v at depth 0, got %v", background, got)
		}
	}
}

func TestScene_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.1, 0.2, 0.3)
	s := NewScene(background, testCamera(), 3)
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), material.Ivory))

	ray := core.NewRay(core.Zero, core.NewVec3(0, 1, 0))
	if got := s.ColorOfRay(ray, 3); got != background {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestScene_NoLightsKeepsReflection(t *testing.T) {
	background := core.NewVec3(0.2, 0.4, 0.6)
	m := material.NewMaterial(core.One, 10, 1, material.Albedo{Diffuse: 1, Specular: 1, Reflect: 0.5})

	s := NewScene(background, testCamera(), 2)
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), m))

	// The reflected ray heads back along +Z and escapes
	expected := background.Multiply(0.5)
	if got := s.ColorOfRay(forward, 2); !vecNear(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScene_NoLightsKeepsRefraction(t *testing.T) {
	background := core.NewVec3(0.2, 0.4, 0.6)
	// Index 1 lets the ray pass straight through both surfaces
	m := material.NewMaterial(core.One, 10, 1, material.Albedo{Diffuse: 1, Specular: 1, Refract: 0.5})

	s := NewScene(background, testCamera(), 3)
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), m))

	expected := background.Multiply(0.25)
	if got := s.ColorOfRay(forward, 3); !vecNear(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScene_DiffuseShading(t *testing.T) {
	m := material.NewMaterial(core.NewVec3(0.5, 0.25, 1), 10, 1, material.Albedo{Diffuse: 1})
	s := NewScene(core.Zero, testCamera(), 1)
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), m))
	s.AddLight(NewLight(core.NewVec3(0, 0, 0), 2))

	// Light straight along the normal: diffuse intensity = 2 * 1
	expected := core.NewVec3(1, 0.5, 2)
	if got := s.ColorOfRay(forward, 1); !vecNear(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScene_SpecularHighlight(t *testing.T) {
	m := material.NewMaterial(core.Zero, 50, 1, material.Albedo{Specular: 1})
	s := NewScene(core.Zero, testCamera(), 1)
	s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), m))
	s.AddLight(NewLight(core.NewVec3(0, 0, 0), 1.5))

	// The light sits on the viewer so the mirrored light direction lines up with the view ray
	expected := core.NewVec3(1.5, 1.5, 1.5)
	if got := s.ColorOfRay(forward, 1); !vecNear(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScene_OccluderBlocksLight(t *testing.T) {
	m := material.NewMaterial(core.One, 10, 1, material.Albedo{Diffuse: 1})

	for _, mode := range []ShadowMode{ShadowsUnbounded, ShadowsBoundedByLight} {
		s := NewScene(core.Zero, testCamera(), 1)
		s.SetShadowMode(mode)
		s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), m))
		// Light off to the side, blocked by a ball halfway there
		s.AddLight(NewLight(core.NewVec3(10, 0, -4), 1))
		s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(5, 0, -4), 1), m))

		if got := s.ColorOfRay(forward, 1); got != core.Zero {
			t.Errorf("mode %d: expected shadowed point to be black, got %v", mode, got)
		}
	}
}

// An object beyond the light still shadows it unless shadow rays are
// bounded by the light distance.
func TestScene_OccluderBeyondLight(t *testing.T) {
	m := material.NewMaterial(core.One, 10, 1, material.Albedo{Diffuse: 1})

	tests := []struct {
		name     string
		mode     ShadowMode
		expected core.Vec3
	}{
		{"unbounded keeps the shadow", ShadowsUnbounded, core.Zero},
		{"bounded ignores it", ShadowsBoundedByLight, core.One},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(core.Zero, testCamera(), 1)
			s.SetShadowMode(tt.mode)
			s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), m))
			// Light between the ball and the camera, occluder behind the camera
			s.AddLight(NewLight(core.NewVec3(0, 0, -2), 1))
			s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, 5), 1), m))

			if got := s.ColorOfRay(forward, 1); !vecNear(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScene_HitWorldTieBreak(t *testing.T) {
	first := material.NewMaterial(core.One, 10, 1, material.Albedo{Diffuse: 1})
	second := material.NewMaterial(core.Zero, 10, 1, material.Albedo{Diffuse: 1})
	tile := material.NewMaterial(core.NewVec3(0, 1, 0), 10, 1, material.Albedo{Diffuse: 1})

	t.Run("insertion order within balls", func(t *testing.T) {
		s := NewScene(core.Zero, testCamera(), 1)
		s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), first))
		s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), second))

		_, object, isHit := s.hitWorld(forward)
		if !isHit || object.Material() != first {
			t.Error("Expected the first inserted ball to win the tie")
		}
	})

	t.Run("balls before checkerboards", func(t *testing.T) {
		s := NewScene(core.Zero, testCamera(), 1)
		s.AddCheckerboardFragment(NewCheckerboard(geometry.NewCheckerboardFragment(-5, 4, true), tile))
		// Top of the ball touches the floor exactly below the ray origin
		s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0.5, -6, 0.5), 1), first))

		down := core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(0, -1, 0))
		dist, object, isHit := s.hitWorld(down)
		if !isHit || object.Material() != first {
			t.Error("Expected the ball to win the tie against the checkerboard")
		}
		if math.Abs(dist-5) > tolerance {
			t.Errorf("Expected t=5, got t=%f", dist)
		}
	})

	t.Run("nearest across collections", func(t *testing.T) {
		s := NewScene(core.Zero, testCamera(), 1)
		s.AddBall(NewBall(geometry.NewSphere(core.NewVec3(0.5, -10, 0.5), 1), first))
		s.AddCheckerboardFragment(NewCheckerboard(geometry.NewCheckerboardFragment(-5, 4, true), tile))

		down := core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(0, -1, 0))
		_, object, isHit := s.hitWorld(down)
		if !isHit || object.Material() != tile {
			t.Error("Expected the closer checkerboard to be hit")
		}
	})
}

func TestScene_SingleSphereEndToEnd(t *testing.T) {
	cfg := SingleSphereConfig()
	s := NewSingleSphereScene(cfg)

	center := s.ColorOfPixel(cfg.Width/2, cfg.Height/2)
	if center == cfg.Background {
		t.Errorf("Center pixel should hit the sphere, got background %v", center)
	}
	if center.X <= 0 || center.Y <= 0 || center.Z <= 0 {
		t.Errorf("Center pixel should be lit, got %v", center)
	}

	corners := [][2]int{{0, 0}, {cfg.Width - 1, 0}, {0, cfg.Height - 1}, {cfg.Width - 1, cfg.Height - 1}}
	for _, c := range corners {
		if got := s.ColorOfPixel(c[0], c[1]); got != core.Zero {
			t.Errorf("Corner pixel %v should be exactly the background, got %v", c, got)
		}
	}
}

func TestRefract(t *testing.T) {
	up := core.Up

	t.Run("normal incidence passes straight", func(t *testing.T) {
		incident := core.NewVec3(0, -1, 0)
		dir, ok := Refract(incident, up, 1/1.5)
		if !ok || !vecNear(dir, incident) {
			t.Errorf("Expected %v, got %v (ok=%t)", incident, dir, ok)
		}
	})

	t.Run("entering bends toward the normal", func(t *testing.T) {
		incident := core.NewVec3(1, -1, 0).Normalize()
		eta := 1 / 1.5
		dir, ok := Refract(incident, up, eta)
		if !ok {
			t.Fatal("Expected a refracted direction")
		}
		sinI := math.Sqrt(1 - incident.Dot(up)*incident.Dot(up))
		sinT := math.Sqrt(1 - dir.Dot(up)*dir.Dot(up))
		if math.Abs(sinT-eta*sinI) > 1e-9 {
			t.Errorf("Snell's law violated: sinT=%f, expected %f", sinT, eta*sinI)
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Errorf("Expected unit direction, got length %f", dir.Length())
		}
		if dir.Y >= 0 {
			t.Errorf("Refracted ray should continue below the surface, got %v", dir)
		}
	})

	t.Run("exiting flips the normal", func(t *testing.T) {
		// Leaving glass upward at normal incidence
		incident := core.NewVec3(0, 1, 0)
		dir, ok := Refract(incident, up, 1/1.5)
		if !ok || !vecNear(dir, incident) {
			t.Errorf("Expected %v, got %v (ok=%t)", incident, dir, ok)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		// Leaving glass at a grazing angle
		incident := core.NewVec3(0.9, 0.3, 0).Normalize()
		if dir, ok := Refract(incident, up, 1/1.5); ok {
			t.Errorf("Expected total internal reflection, got %v", dir)
		}
	})
}

func TestNewScene_NegativeDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative depth")
		}
	}()
	NewScene(core.Zero, testCamera(), -1)
}

func TestScene_InspectPixel(t *testing.T) {
	cfg := SingleSphereConfig()
	cfg.Width, cfg.Height = 11, 11
	s := NewSingleSphereScene(cfg)

	hit, ok := s.InspectPixel(5, 5)
	if !ok {
		t.Fatal("Expected center pixel to hit the sphere")
	}
	if math.Abs(hit.Distance-4) > tolerance {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if !vecNear(hit.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal facing the camera, got %v", hit.Normal)
	}
	if _, isBall := hit.Object.(*Ball); !isBall {
		t.Errorf("Expected a ball, got %T", hit.Object)
	}

	if _, ok := s.InspectPixel(0, 0); ok {
		t.Error("Corner pixel should miss")
	}
}
