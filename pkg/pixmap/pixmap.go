package pixmap

import (
	"fmt"
	"image"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Pixmap is a row-major buffer of linear RGB colors
type Pixmap struct {
	data []core.Vec3
	cols int
	rows int
}

// New allocates a black pixmap
func New(cols, rows int) *Pixmap {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("pixmap: invalid size %dx%d", cols, rows))
	}
	return &Pixmap{
		data: make([]core.Vec3, cols*rows),
		cols: cols,
		rows: rows,
	}
}

func (p *Pixmap) Cols() int { return p.cols }
func (p *Pixmap) Rows() int { return p.rows }

// At returns the color at (col, row). It panics when the pixel is out of range.
func (p *Pixmap) At(col, row int) core.Vec3 {
	return p.data[p.index(col, row)]
}

// Set stores the color at (col, row). It panics when the pixel is out of range.
// Concurrent calls are safe as long as they write different pixels.
func (p *Pixmap) Set(col, row int, color core.Vec3) {
	p.data[p.index(col, row)] = color
}

// Crop copies the pixels inside r into a new pixmap. r must lie within the pixmap.
func (p *Pixmap) Crop(r image.Rectangle) *Pixmap {
	cropped := New(r.Dx(), r.Dy())
	for row := r.Min.Y; row < r.Max.Y; row++ {
		start := p.index(r.Min.X, row)
		copy(cropped.data[(row-r.Min.Y)*cropped.cols:], p.data[start:start+r.Dx()])
	}
	return cropped
}

func (p *Pixmap) index(col, row int) int {
	if col < 0 || col >= p.cols || row < 0 || row >= p.rows {
		panic(fmt.Sprintf("pixmap: pixel (%d, %d) out of range %dx%d", col, row, p.cols, p.rows))
	}
	return row*p.cols + col
}

// Bytes converts every channel to round(255*clamp(v, 0, 1)) and returns them
// packed as RGB triples, row by row.
func (p *Pixmap) Bytes() []byte {
	result := make([]byte, 3*len(p.data))
	for i, v := range p.data {
		result[3*i] = toByte(v.X)
		result[3*i+1] = toByte(v.Y)
		result[3*i+2] = toByte(v.Z)
	}
	return result
}

// Image wraps the pixel bytes in an opaque RGBA image for encoding
func (p *Pixmap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.cols, p.rows))
	rgb := p.Bytes()
	for i := 0; i < len(p.data); i++ {
		copy(img.Pix[4*i:4*i+3], rgb[3*i:3*i+3])
		img.Pix[4*i+3] = 255
	}
	return img
}

func toByte(v float64) byte {
	// NaN would survive the clamp
	if math.IsNaN(v) {
		return 0
	}
	return byte(math.Round(255 * mgl64.Clamp(v, 0, 1)))
}
