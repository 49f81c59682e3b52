package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic("geometry: sphere radius must be positive")
	}
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// DistanceToIntersection tests if a ray intersects with the sphere
func (s *Sphere) DistanceToIntersection(ray core.Ray) (float64, bool) {
	originToCenter := s.Center.Subtract(ray.Origin)

	// Distance along the ray to P, the point on the ray's line closest to the center
	originToP := originToCenter.Dot(ray.Direction)

	centerToLineSquared := originToCenter.LengthSquared() - originToP*originToP
	halfChordSquared := s.Radius*s.Radius - centerToLineSquared
	if halfChordSquared < 0 {
		return 0, false
	}

	halfChord := math.Sqrt(halfChordSquared)

	// Try the closer intersection point first
	if near := originToP - halfChord; near > Epsilon {
		return near, true
	}
	// Origin is inside the sphere or on its surface
	if far := originToP + halfChord; far > Epsilon {
		return far, true
	}
	return 0, false
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
