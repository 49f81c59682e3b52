package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect reports the object seen through one pixel of a scene
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, preset, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid scene parameters: %w", err))
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid x coordinate"))
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid y coordinate"))
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, errors.New("pixel coordinates out of bounds"))
		return
	}

	sceneObj, err := s.buildScene(req, preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	hit, ok := sceneObj.InspectPixel(pixelX, pixelY)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(hit.Object)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        toArray(hit.Point),
		Normal:       toArray(hit.Normal),
		Distance:     hit.Distance,
		Properties: map[string]interface{}{
			"geometry": geometryProps,
			"material": extractMaterialInfo(hit.Object.Material()),
		},
	})
}

// extractGeometryInfo describes the shape behind a scene object
func extractGeometryInfo(object scene.Object) (string, map[string]interface{}) {
	switch o := object.(type) {
	case *scene.Ball:
		return "ball", map[string]interface{}{
			"center": toArray(o.Center),
			"radius": o.Radius,
		}
	case *scene.Checkerboard:
		return "checkerboard", map[string]interface{}{
			"height":   o.Height,
			"tileSize": o.TileSize,
			"even":     o.Even,
		}
	default:
		return "unknown", map[string]interface{}{}
	}
}

func extractMaterialInfo(m *material.Material) map[string]interface{} {
	albedo := m.Albedo()
	name := material.PresetName(m)
	if name == "" {
		name = "custom"
	}
	return map[string]interface{}{
		"name":             name,
		"diffuseColor":     toArray(m.DiffuseColor()),
		"specularExponent": m.SpecularExponent(),
		"refractiveIndex":  m.RefractiveIndex(),
		"albedo":           [4]float64{albedo.Diffuse, albedo.Specular, albedo.Reflect, albedo.Refract},
	}
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
