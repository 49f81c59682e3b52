package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Albedo holds the weights the shading equation uses to blend its four terms.
// The weights are not required to sum to 1.
type Albedo struct {
	Diffuse  float64
	Specular float64
	Reflect  float64
	Refract  float64
}

// Material is an immutable set of Phong shading parameters. Scene objects
// hold a *Material so many of them can share one instance.
type Material struct {
	diffuseColor     core.Vec3
	specularExponent float64
	refractiveIndex  float64
	albedo           Albedo
}

// NewMaterial creates a new material. A refractive index of 1 means no bending.
func NewMaterial(diffuseColor core.Vec3, specularExponent, refractiveIndex float64, albedo Albedo) *Material {
	if specularExponent <= 0 {
		panic("material: specular exponent must be positive")
	}
	if refractiveIndex <= 0 {
		panic("material: refractive index must be positive")
	}
	return &Material{
		diffuseColor:     diffuseColor,
		specularExponent: specularExponent,
		refractiveIndex:  refractiveIndex,
		albedo:           albedo,
	}
}

// DiffuseColor returns the base color scaled by diffuse lighting
func (m *Material) DiffuseColor() core.Vec3 { return m.diffuseColor }

// SpecularExponent returns the Phong exponent; larger values give tighter highlights
func (m *Material) SpecularExponent() float64 { return m.specularExponent }

// RefractiveIndex returns the index of refraction relative to the surrounding medium
func (m *Material) RefractiveIndex() float64 { return m.refractiveIndex }

// Albedo returns all four term weights
func (m *Material) Albedo() Albedo { return m.albedo }

// DiffuseWeight returns the weight of the diffuse term
func (m *Material) DiffuseWeight() float64 { return m.albedo.Diffuse }

// SpecularWeight returns the weight of the specular highlight term
func (m *Material) SpecularWeight() float64 { return m.albedo.Specular }

// ReflectWeight returns the weight of the reflected ray's color
func (m *Material) ReflectWeight() float64 { return m.albedo.Reflect }

// RefractWeight returns the weight of the refracted ray's color
func (m *Material) RefractWeight() float64 { return m.albedo.Refract }
