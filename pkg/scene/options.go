package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"golang.org/x/image/colornames"
)

// ParseBackground accepts an SVG/CSS color name ("skyblue") or three
// comma separated linear components ("0.2,0.7,0.8").
func ParseBackground(value string) (core.Vec3, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	if c, ok := colornames.Map[value]; ok {
		return core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("invalid background %q: expected a color name or r,g,b", value)
	}
	var rgb [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid background component %q: %w", part, err)
		}
		rgb[i] = v
	}
	return core.NewVec3(rgb[0], rgb[1], rgb[2]), nil
}

// ParseShadowMode maps "unbounded" and "bounded" to a ShadowMode
func ParseShadowMode(value string) (ShadowMode, error) {
	switch strings.ToLower(value) {
	case "", "unbounded":
		return ShadowsUnbounded, nil
	case "bounded":
		return ShadowsBoundedByLight, nil
	default:
		return ShadowsUnbounded, fmt.Errorf("invalid shadow mode %q: expected unbounded or bounded", value)
	}
}

func (m ShadowMode) String() string {
	if m == ShadowsBoundedByLight {
		return "bounded"
	}
	return "unbounded"
}
