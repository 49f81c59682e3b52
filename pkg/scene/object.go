package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Object is a shape paired with the material it is shaded with
type Object interface {
	geometry.Shape
	Material() *material.Material
}

// Ball is a sphere with a shared material. Intersection and normals come
// from the embedded sphere.
type Ball struct {
	*geometry.Sphere
	material *material.Material
}

// NewBall creates a new ball
func NewBall(sphere *geometry.Sphere, m *material.Material) *Ball {
	return &Ball{Sphere: sphere, material: m}
}

// Material returns the ball's shared material
func (b *Ball) Material() *material.Material { return b.material }

// Checkerboard is one parity of a checkerboard floor with its tile material
type Checkerboard struct {
	*geometry.CheckerboardFragment
	material *material.Material
}

// NewCheckerboard creates a new checkerboard fragment object
func NewCheckerboard(fragment *geometry.CheckerboardFragment, m *material.Material) *Checkerboard {
	return &Checkerboard{CheckerboardFragment: fragment, material: m}
}

// Material returns the tile material of this fragment
func (c *Checkerboard) Material() *material.Material { return c.material }
