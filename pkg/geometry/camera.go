package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera at the origin looking down -Z
type Camera struct {
	cols, rows int
	halfWidth  float64
	halfHeight float64
	zDir       float64 // image plane distance in pixel units, negative
}

// NewCamera creates a camera from a vertical field of view in radians and the image size in pixels.
// The field of view must lie strictly between 0 and pi.
func NewCamera(verticalFov float64, cols, rows int) *Camera {
	if cols <= 0 || rows <= 0 {
		panic("geometry: camera resolution must be positive")
	}
	if verticalFov <= 0 || verticalFov >= math.Pi {
		panic("geometry: camera field of view must be in (0, pi)")
	}
	return &Camera{
		cols:       cols,
		rows:       rows,
		halfWidth:  float64(cols) / 2,
		halfHeight: float64(rows) / 2,
		zDir:       -float64(rows) / (2 * math.Tan(verticalFov/2)),
	}
}

// Cols returns the image width in pixels
func (c *Camera) Cols() int { return c.cols }

// Rows returns the image height in pixels
func (c *Camera) Rows() int { return c.rows }

// GetRayForPixel returns the primary ray through the center of a pixel.
// Row 0 is the top of the image.
func (c *Camera) GetRayForPixel(col, row int) core.Ray {
	x := float64(col) + 0.5 - c.halfWidth
	y := -(float64(row) + 0.5 - c.halfHeight)
	return core.NewRay(core.Zero, core.NewVec3(x, y, c.zDir))
}
