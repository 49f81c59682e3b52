package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene name has no registered preset
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Config      Config `json:"-"`           // Settings the scene is meant to be rendered with
}

// Preset is a registered scene builder
type Preset struct {
	Info  SceneInfo
	Build func(cfg Config) *Scene
}

var presets = map[string]Preset{
	"default": {
		Info: SceneInfo{
			ID:          "default",
			DisplayName: "Default",
			Description: "Ivory, glass, rubber and mirror balls over a checkerboard",
			Config:      DefaultConfig(),
		},
		Build: NewDefaultScene,
	},
	"single-sphere": {
		Info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One diffuse sphere lit from the camera on a black background",
			Config:      SingleSphereConfig(),
		},
		Build: NewSingleSphereScene,
	},
	"checkerboard": {
		Info: SceneInfo{
			ID:          "checkerboard",
			DisplayName: "Checkerboard",
			Description: "The checkerboard floor on its own",
			Config:      CheckerboardConfig(),
		},
		Build: NewCheckerboardScene,
	},
	"glass": {
		Info: SceneInfo{
			ID:          "glass",
			DisplayName: "Glass",
			Description: "A glass ball refracting a mirror and a rubber ball",
			Config:      GlassConfig(),
		},
		Build: NewGlassScene,
	},
}

// LookupPreset returns the preset registered under name
func LookupPreset(name string) (Preset, error) {
	preset, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return preset, nil
}

// ListScenes returns every built-in scene sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(presets))
	for _, preset := range presets {
		scenes = append(scenes, preset.Info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes
}
