package scene

import (
	"math"
	"slices"

	"github.com/taigrr/glint/pkg/math3d"
)

// Light is a point light.
type Light struct {
	Position  math3d.Vec3
	Intensity float64 // Must be >= 0
}

// NewLight creates a point light.
func NewLight(position math3d.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// Hit describes where a ray meets the nearest surface.
type Hit struct {
	Material Material
	Point    math3d.Vec3
	Normal   math3d.Vec3 // Unit length, pointing away from the sphere center
	Distance float64     // Distance along the ray direction
}

// Scene is the read-only input of a render.
type Scene struct {
	Spheres []Sphere
	Lights  []Light
}

// New creates a scene holding copies of the given spheres and lights.
func New(spheres []Sphere, lights []Light) *Scene {
	return &Scene{
		Spheres: slices.Clone(spheres),
		Lights:  slices.Clone(lights),
	}
}

// Empty returns a scene with no spheres and no lights.
func Empty() *Scene {
	return &Scene{}
}

// Intersect finds the nearest sphere hit by the ray (origin, dir).
func (s *Scene) Intersect(origin, dir math3d.Vec3) (Hit, bool) {
	return Nearest(origin, dir, s.Spheres)
}

// Nearest tests every sphere and returns the hit with the smallest
// distance. On an exact tie the sphere listed first wins.
func Nearest(origin, dir math3d.Vec3, spheres []Sphere) (Hit, bool) {
	nearest := math.Inf(1)
	idx := -1
	for i := range spheres {
		if t, ok := spheres[i].Intersect(origin, dir); ok && t < nearest {
			nearest = t
			idx = i
		}
	}
	if idx < 0 {
		return Hit{}, false
	}

	sp := &spheres[idx]
	point := origin.Add(dir.Scale(nearest))
	return Hit{
		Material: sp.Material,
		Point:    point,
		Normal:   sp.NormalAt(point),
		Distance: nearest,
	}, true
}
