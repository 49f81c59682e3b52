package loaders

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/pixmap"
	"github.com/fogleman/gg"
)

// EncodePNG writes the pixmap as an 8-bit RGB PNG
func EncodePNG(w io.Writer, p *pixmap.Pixmap) error {
	if err := png.Encode(w, p.Image()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the pixmap to filename, creating parent directories as needed
func SavePNG(filename string, p *pixmap.Pixmap) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := gg.SavePNG(filename, p.Image()); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
