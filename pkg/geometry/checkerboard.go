package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CheckerboardFragment is the half of an infinite horizontal plane made of
// the tiles with one parity. Two fragments with opposite parity tile the
// whole plane without overlapping.
type CheckerboardFragment struct {
	Height   float64 // y coordinate of the plane
	TileSize float64 // side length of a square tile
	Even     bool    // which tiles this fragment owns
}

// NewCheckerboardFragment creates a new fragment. The tile size must be positive.
func NewCheckerboardFragment(height, tileSize float64, even bool) *CheckerboardFragment {
	if tileSize <= 0 {
		panic("geometry: checkerboard tile size must be positive")
	}
	return &CheckerboardFragment{
		Height:   height,
		TileSize: tileSize,
		Even:     even,
	}
}

// IsEvenTile reports the parity of the tile containing the point's (x, z)
func (c *CheckerboardFragment) IsEvenTile(point core.Vec3) bool {
	return (tileIndex(point.X/c.TileSize)+tileIndex(point.Z/c.TileSize))%2 == 0
}

// tileIndex floors v into the int32 range, saturating at the bounds and
// mapping NaN to 0, so far-away points keep a well defined parity
func tileIndex(v float64) int64 {
	switch f := math.Floor(v); {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	default:
		return int64(f)
	}
}

// DistanceToIntersection tests if a ray hits one of the fragment's tiles
func (c *CheckerboardFragment) DistanceToIntersection(ray core.Ray) (float64, bool) {
	// Parallel to the plane
	if math.Abs(ray.Direction.Y) < Epsilon {
		return 0, false
	}

	t := (c.Height - ray.Origin.Y) / ray.Direction.Y
	if t <= Epsilon {
		return 0, false
	}

	if c.IsEvenTile(ray.At(t)) != c.Even {
		return 0, false
	}
	return t, true
}

// NormalAt always points up
func (c *CheckerboardFragment) NormalAt(core.Vec3) core.Vec3 {
	return core.Up
}
