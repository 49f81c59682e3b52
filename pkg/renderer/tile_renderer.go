package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/pixmap"
)

// TileRenderer shades the pixels of one tile into a shared pixmap
type TileRenderer struct {
	scene Scene
}

// NewTileRenderer creates a new tile renderer for the given scene
func NewTileRenderer(scene Scene) *TileRenderer {
	return &TileRenderer{scene: scene}
}

// RenderTileBounds renders pixels within the specified bounds and returns the pixel count.
// Tiles have non-overlapping bounds, so concurrent calls never write the same pixel.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, target *pixmap.Pixmap) int {
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			target.Set(i, j, tr.scene.ColorOfPixel(i, j))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
