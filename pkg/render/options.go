package render

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

var (
	// ErrInvalidSize is returned for a non-positive image width or height.
	ErrInvalidSize = errors.New("invalid image size")
	// ErrInvalidFOV is returned for a field of view outside (0, π).
	ErrInvalidFOV = errors.New("invalid field of view")
)

// Options controls the size and projection of a render.
type Options struct {
	Width   int
	Height  int
	FOV     float64 // Vertical field of view in radians
	Workers int     // Parallel workers; <= 0 means runtime.NumCPU()
}

// DefaultOptions returns the 1024x768, 90° configuration.
func DefaultOptions() Options {
	return Options{
		Width:  1024,
		Height: 768,
		FOV:    math.Pi / 2,
	}
}

// Validate checks that the options describe a renderable image.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if !(o.FOV > 0 && o.FOV < math.Pi) {
		return fmt.Errorf("%w: %v rad", ErrInvalidFOV, o.FOV)
	}
	return nil
}

// Camera returns the camera described by the options.
func (o Options) Camera() *Camera {
	return NewCamera(o.Width, o.Height, o.FOV)
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}
