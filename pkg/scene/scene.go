package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ShadowMode selects which occluders block a light
type ShadowMode int

const (
	// ShadowsUnbounded counts any hit along the shadow ray, including
	// objects farther away than the light itself.
	ShadowsUnbounded ShadowMode = iota
	// ShadowsBoundedByLight only counts hits between the point and the light.
	ShadowsBoundedByLight
)

// Scene contains all the elements needed for rendering. Objects and lights
// are added while building; once rendering starts the scene is read-only and
// safe for concurrent ColorOfPixel calls.
type Scene struct {
	balls           []*Ball
	checkerboards   []*Checkerboard
	lights          []Light
	backgroundColor core.Vec3
	camera          *geometry.Camera
	maxDepth        int
	shadowMode      ShadowMode
}

// NewScene creates an empty scene. maxDepth bounds the reflection/refraction recursion.
func NewScene(backgroundColor core.Vec3, camera *geometry.Camera, maxDepth int) *Scene {
	if maxDepth < 0 {
		panic("scene: recursion depth must be non-negative")
	}
	return &Scene{
		backgroundColor: backgroundColor,
		camera:          camera,
		maxDepth:        maxDepth,
	}
}

// AddBall appends a ball
func (s *Scene) AddBall(ball *Ball) {
	s.balls = append(s.balls, ball)
}

// AddCheckerboardFragment appends a checkerboard fragment
func (s *Scene) AddCheckerboardFragment(fragment *Checkerboard) {
	s.checkerboards = append(s.checkerboards, fragment)
}

// AddLight appends a light
func (s *Scene) AddLight(light Light) {
	s.lights = append(s.lights, light)
}

// SetShadowMode changes how shadow rays are tested. The default is ShadowsUnbounded.
func (s *Scene) SetShadowMode(mode ShadowMode) {
	s.shadowMode = mode
}

// Camera returns the scene camera
func (s *Scene) Camera() *geometry.Camera { return s.camera }

// BackgroundColor returns the color of rays that hit nothing
func (s *Scene) BackgroundColor() core.Vec3 { return s.backgroundColor }

// MaxDepth returns the recursion depth primary rays start with
func (s *Scene) MaxDepth() int { return s.maxDepth }

// ShadowMode returns how shadow rays are tested
func (s *Scene) ShadowMode() ShadowMode { return s.shadowMode }

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.balls) + len(s.checkerboards)
}

// GetLightCount returns the number of lights in the scene
func (s *Scene) GetLightCount() int {
	return len(s.lights)
}

// ColorOfPixel traces the camera ray for a pixel with the full depth budget
func (s *Scene) ColorOfPixel(col, row int) core.Vec3 {
	return s.ColorOfRay(s.camera.GetRayForPixel(col, row), s.maxDepth)
}

// ColorOfRay returns the color seen along a ray, recursing into reflected
// and refracted rays until remainingDepth reaches zero.
func (s *Scene) ColorOfRay(ray core.Ray, remainingDepth int) core.Vec3 {
	if remainingDepth <= 0 {
		return s.backgroundColor
	}

	dist, object, isHit := s.hitWorld(ray)
	if !isHit {
		return s.backgroundColor
	}

	m := object.Material()
	point := ray.At(dist)
	normal := object.NormalAt(point).Normalize()

	reflected := core.NewRay(point, ray.Direction.Reflect(normal))
	reflectColor := s.ColorOfRay(reflected, remainingDepth-1)

	// Total internal reflection contributes nothing, not the background
	refractColor := core.Zero
	if dir, ok := Refract(ray.Direction, normal, 1/m.RefractiveIndex()); ok {
		refractColor = s.ColorOfRay(core.NewRay(point, dir), remainingDepth-1)
	}

	diffuse, specular := 0.0, 0.0
	for _, light := range s.lights {
		toLight := light.Position().Subtract(point)
		lightDir := toLight.Normalize()

		if s.inShadow(core.NewRay(point, lightDir), toLight.Length()) {
			continue
		}

		diffuse += light.Intensity() * max(0, lightDir.Dot(normal))
		specular += light.Intensity() *
			math.Pow(max(0, lightDir.Reflect(normal).Dot(ray.Direction)), m.SpecularExponent())
	}

	return m.DiffuseColor().Multiply(m.DiffuseWeight() * diffuse).
		Add(core.One.Multiply(m.SpecularWeight() * specular)).
		Add(reflectColor.Multiply(m.ReflectWeight())).
		Add(refractColor.Multiply(m.RefractWeight()))
}

// inShadow reports whether the shadow ray toward a light at lightDist is blocked
func (s *Scene) inShadow(shadowRay core.Ray, lightDist float64) bool {
	dist, _, isHit := s.hitWorld(shadowRay)
	if !isHit {
		return false
	}
	if s.shadowMode == ShadowsBoundedByLight {
		return dist < lightDist
	}
	return true
}

// hitWorld finds the nearest object along the ray. Each collection is reduced
// to its own nearest hit first; on equal distances balls win over
// checkerboards and earlier objects win over later ones.
func (s *Scene) hitWorld(ray core.Ray) (float64, Object, bool) {
	ballDist, ball, hitBall := nearestHit(s.balls, ray)
	boardDist, board, hitBoard := nearestHit(s.checkerboards, ray)

	switch {
	case hitBall && (!hitBoard || ballDist <= boardDist):
		return ballDist, ball, true
	case hitBoard:
		return boardDist, board, true
	default:
		return 0, nil, false
	}
}

func nearestHit[T Object](objects []T, ray core.Ray) (float64, Object, bool) {
	var closest Object
	closestSoFar := math.Inf(1)
	hitAnything := false

	for _, object := range objects {
		if dist, isHit := object.DistanceToIntersection(ray); isHit && dist < closestSoFar {
			hitAnything = true
			closestSoFar = dist
			closest = object
		}
	}

	return closestSoFar, closest, hitAnything
}

// Refract bends a unit incident direction through a surface with unit normal
// using Snell's law, where eta is the ratio of refractive indices
// (outside/inside). A ray leaving the surface flips the normal and inverts
// eta. The second result is false on total internal reflection.
func Refract(incident, normal core.Vec3, eta float64) (core.Vec3, bool) {
	cosI := -max(-1, min(1, incident.Dot(normal)))
	if cosI < 0 {
		return Refract(incident, normal.Negate(), 1/eta)
	}

	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosI - math.Sqrt(k))), true
}

// HitInfo describes the first object a ray hits
type HitInfo struct {
	Distance float64
	Point    core.Vec3
	Normal   core.Vec3
	Object   Object
}

// InspectPixel returns the first object seen through a pixel, without shading it
func (s *Scene) InspectPixel(col, row int) (HitInfo, bool) {
	ray := s.camera.GetRayForPixel(col, row)
	dist, object, isHit := s.hitWorld(ray)
	if !isHit {
		return HitInfo{}, false
	}

	point := ray.At(dist)
	return HitInfo{
		Distance: dist,
		Point:    point,
		Normal:   object.NormalAt(point).Normalize(),
		Object:   object,
	}, true
}
