package render

import (
	"math"

	"github.com/taigrr/glint/pkg/math3d"
)

// Camera is a pinhole camera fixed at the world origin, looking down -Z
// with +Y up.
type Camera struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Vertical field of view in radians

	halfHeight float64 // tan(FOV/2)
	aspect     float64 // Width / Height
}

// NewCamera creates a camera for an image of the given size.
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		Width:      width,
		Height:     height,
		FOV:        fov,
		halfHeight: math.Tan(fov / 2),
		aspect:     float64(width) / float64(height),
	}
}

// Origin returns the position every primary ray starts from.
func (c *Camera) Origin() math3d.Vec3 {
	return math3d.Zero3()
}

// Direction returns the unit direction of the primary ray through the
// center of pixel (i, j). Row j = 0 is the top of the image.
func (c *Camera) Direction(i, j int) math3d.Vec3 {
	x := (2*(float64(i)+0.5)/float64(c.Width) - 1) * c.halfHeight * c.aspect
	y := -(2*(float64(j)+0.5)/float64(c.Height) - 1) * c.halfHeight
	return math3d.V3(x, y, 0).Add(math3d.Forward()).Normalize()
}
