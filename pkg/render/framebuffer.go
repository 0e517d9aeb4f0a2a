// Package render turns a scene into a framebuffer of linear colors.
package render

import (
	"github.com/taigrr/glint/pkg/math3d"
)

// Framebuffer holds one linear RGB color per pixel.
// Colors are not clamped; that is left to the encoder.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []math3d.Vec3 // Row-major, index x + y*Width
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]math3d.Vec3, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c math3d.Vec3) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c math3d.Vec3) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) math3d.Vec3 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math3d.Vec3{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Row returns the pixels of row y. The slice aliases the framebuffer.
func (fb *Framebuffer) Row(y int) []math3d.Vec3 {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}
