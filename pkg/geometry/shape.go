package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Epsilon is the self-intersection guard: hits closer than this to the ray
// origin are discarded so secondary rays leaving a surface do not hit it again.
const Epsilon = 1e-3

// Shape interface for objects that can be hit by rays
type Shape interface {
	// DistanceToIntersection returns the nearest distance greater than Epsilon
	// at which the ray hits the shape.
	DistanceToIntersection(ray core.Ray) (float64, bool)
	// NormalAt returns the outward unit normal at a point on the surface.
	NormalAt(point core.Vec3) core.Vec3
}
