// Package encode writes rendered framebuffers as image files.
package encode

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/render"
)

// ErrUnknownFormat is returned for an unsupported format name or file
// extension.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output image format.
type Format int

const (
	FormatP3  Format = iota // ASCII PPM, one "r g b" line per pixel
	FormatP6                // Binary PPM, packed byte triples
	FormatPNG               // 8-bit RGBA PNG
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatP3:
		return "p3"
	case FormatP6:
		return "p6"
	case FormatPNG:
		return "png"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "p3":
		return FormatP3, nil
	case "p6":
		return FormatP6, nil
	case "png":
		return FormatPNG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Quantize converts a linear channel value to 8 bits. The value is clamped
// to [0,1] and scaled by 255.999 so that 1.0 maps to 255 without
// rounding. NaN maps to 0.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	c := colorful.Color{R: v}.Clamped()
	return uint8(math.Floor(255.999 * c.R))
}

// QuantizeColor quantizes each channel of c.
func QuantizeColor(c math3d.Vec3) (r, g, b uint8) {
	return Quantize(c.X), Quantize(c.Y), Quantize(c.Z)
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func ToImage(fb *render.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := QuantizeColor(fb.Pixels[y*fb.Width+x])
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// Encode writes the framebuffer to w in the given format. Pixels are
// written row-major starting from the top row.
func Encode(w io.Writer, fb *render.Framebuffer, format Format) error {
	switch format {
	case FormatP3:
		return writeP3(w, fb)
	case FormatP6:
		return writeP6(w, fb)
	case FormatPNG:
		if err := png.Encode(w, ToImage(fb)); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

func writeP3(w io.Writer, fb *render.Framebuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for _, c := range fb.Pixels {
		r, g, b := QuantizeColor(c)
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write p3: %w", err)
	}
	return nil
}

func writeP6(w io.Writer, fb *render.Framebuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height)
	for _, c := range fb.Pixels {
		r, g, b := QuantizeColor(c)
		bw.Write([]byte{r, g, b})
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write p6: %w", err)
	}
	return nil
}
