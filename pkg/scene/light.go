package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light is a point light. Intensity is a plain brightness multiplier with no distance falloff.
type Light struct {
	position  core.Vec3
	intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) Light {
	if intensity < 0 {
		panic("scene: light intensity must be non-negative")
	}
	return Light{position: position, intensity: intensity}
}

func (l Light) Position() core.Vec3 { return l.position }
func (l Light) Intensity() float64 { return l.intensity }
