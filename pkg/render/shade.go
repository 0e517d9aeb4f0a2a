package render

import (
	"math"

	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/scene"
)

// Background is the color of rays that hit nothing.
var Background = math3d.V3(0.2, 0.7, 0.8)

// Shade returns the color seen along the ray (origin, dir).
//
// The nearest surface is lit by every light with a Lambertian cosine term.
// Lights are not occluded by other spheres, and the result is not clamped.
func Shade(origin, dir math3d.Vec3, sc *scene.Scene) math3d.Vec3 {
	hit, ok := sc.Intersect(origin, dir)
	if !ok {
		return Background
	}
	return hit.Material.DiffuseColor.Scale(Irradiance(hit, sc.Lights))
}

// Irradiance sums the diffuse contribution of each light at a hit.
// Lights behind the surface contribute nothing.
func Irradiance(hit scene.Hit, lights []scene.Light) float64 {
	var sum float64
	for _, l := range lights {
		toLight := l.Position.Sub(hit.Point).Normalize()
		sum += l.Intensity * math.Max(0, toLight.Dot(hit.Normal))
	}
	return sum
}
