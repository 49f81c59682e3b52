package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Shared materials used by the built-in scenes.
var (
	Ivory = NewMaterial(core.NewVec3(0.4, 0.4, 0.3), 50, 1.0,
		Albedo{Diffuse: 0.6, Specular: 0.3, Reflect: 0.1})

	Glass = NewMaterial(core.NewVec3(0.6, 0.7, 0.8), 125, 1.5,
		Albedo{Specular: 0.5, Reflect: 0.1, Refract: 0.8})

	RedRubber = NewMaterial(core.NewVec3(0.3, 0.1, 0.1), 10, 1.0,
		Albedo{Diffuse: 0.9, Specular: 0.1})

	// Mirror has a specular weight above 1 to get a hard highlight.
	Mirror = NewMaterial(core.NewVec3(1, 1, 1), 1425, 1.0,
		Albedo{Specular: 10, Reflect: 0.8})

	BlueTile = NewMaterial(core.NewVec3(0.2, 0.2, 0.4), 10, 1.0,
		Albedo{Diffuse: 0.5, Specular: 0.3, Reflect: 0.5})

	GreenTile = NewMaterial(core.NewVec3(0.2, 0.4, 0.2), 10, 1.0,
		Albedo{Diffuse: 0.5, Specular: 0.3, Reflect: 0.5})
)

// Catalog maps preset names to the shared instances
var Catalog = map[string]*Material{
	"ivory":      Ivory,
	"glass":      Glass,
	"red-rubber": RedRubber,
	"mirror":     Mirror,
	"blue-tile":  BlueTile,
	"green-tile": GreenTile,
}

// PresetName returns the catalog name of a shared material, or "" for a custom one
func PresetName(m *Material) string {
	for name, preset := range Catalog {
		if preset == m {
			return name
		}
	}
	return ""
}
