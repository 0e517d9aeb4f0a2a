// Package scene describes the objects a glint render sees: diffuse
// spheres, point lights, and the nearest-hit query over them.
package scene

import (
	"math"

	"github.com/taigrr/glint/pkg/math3d"
)

// Material describes how a surface reflects light.
type Material struct {
	DiffuseColor math3d.Vec3 // Linear RGB, conventionally in [0,1], not clamped
}

// NewMaterial creates a diffuse material.
func NewMaterial(diffuse math3d.Vec3) Material {
	return Material{DiffuseColor: diffuse}
}

// Sphere is a solid sphere with a single material.
type Sphere struct {
	Center   math3d.Vec3
	Radius   float64 // Must be > 0
	Material Material
}

// NewSphere creates a sphere.
func NewSphere(center math3d.Vec3, radius float64, material Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the distance along the ray (origin, dir) to the first
// point where it enters or, when the origin is inside the sphere, leaves
// the sphere. The second result is false when the ray misses or the
// sphere lies entirely behind the origin.
func (s Sphere) Intersect(origin, dir math3d.Vec3) (float64, bool) {
	l := s.Center.Sub(origin)
	tca := l.Dot(dir)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the outward unit normal at a point on the surface.
func (s Sphere) NormalAt(p math3d.Vec3) math3d.Vec3 {
	return p.Sub(s.Center).Normalize()
}

// Bounds returns the axis-aligned bounding box of the sphere.
func (s Sphere) Bounds() (min, max math3d.Vec3) {
	r := math3d.V3(s.Radius, s.Radius, s.Radius)
	return s.Center.Sub(r), s.Center.Add(r)
}
