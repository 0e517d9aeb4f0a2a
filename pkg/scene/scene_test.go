package scene

import (
	"testing"

	"github.com/taigrr/glint/pkg/math3d"
)

var (
	red  = NewMaterial(math3d.V3(1, 0, 0))
	blue = NewMaterial(math3d.V3(0, 0, 1))
)

func TestNearestPicksClosestRegardlessOfOrder(t *testing.T) {
	near := NewSphere(math3d.V3(0, 0, -5), 1, red)
	far := NewSphere(math3d.V3(0, 0, -6), 1.5, blue)

	orders := map[string][]Sphere{
		"near first": {near, far},
		"near last":  {far, near},
	}

	for name, spheres := range orders {
		t.Run(name, func(t *testing.T) {
			hit, ok := Nearest(math3d.Zero3(), math3d.Forward(), spheres)
			if !ok {
				t.Fatal("Expected a hit")
			}
			if hit.Material != red {
				t.Errorf("Expected nearest (red) material, got %v", hit.Material)
			}
			if !approx(hit.Distance, 4) {
				t.Errorf("Distance = %v, want 4", hit.Distance)
			}
		})
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	a := NewSphere(math3d.V3(0, 0, -5), 1, red)
	b := NewSphere(math3d.V3(0, 0, -5), 1, blue)

	hit, ok := Nearest(math3d.Zero3(), math3d.Forward(), []Sphere{a, b})
	if !ok || hit.Material != red {
		t.Errorf("Expected first-declared sphere to win a tie, got %v (hit=%v)", hit.Material, ok)
	}
}

func TestNearestHitGeometry(t *testing.T) {
	s := NewSphere(math3d.V3(0, 0, -5), 2, Ivory)
	hit, ok := Nearest(math3d.Zero3(), math3d.Forward(), []Sphere{s})
	if !ok {
		t.Fatal("Expected a hit")
	}
	if !approxVec(hit.Point, math3d.V3(0, 0, -3)) {
		t.Errorf("Point = %v, want (0,0,-3)", hit.Point)
	}
	if !approxVec(hit.Normal, math3d.V3(0, 0, 1)) {
		t.Errorf("Normal = %v, want (0,0,1)", hit.Normal)
	}
	if !approx(hit.Normal.Len(), 1) {
		t.Errorf("Normal length = %v, want 1", hit.Normal.Len())
	}
}

func TestNearestMiss(t *testing.T) {
	if _, ok := Nearest(math3d.Zero3(), math3d.Forward(), nil); ok {
		t.Error("Empty sphere list should never hit")
	}

	s := NewSphere(math3d.V3(10, 0, -5), 1, Ivory)
	if _, ok := Nearest(math3d.Zero3(), math3d.Forward(), []Sphere{s}); ok {
		t.Error("Ray should miss an off-axis sphere")
	}
}

func TestSceneIntersectUsesSpheres(t *testing.T) {
	sc := Reference()
	// Ray toward the red rubber sphere at (-1,-1.5,-12), in front of the rest.
	dir := math3d.V3(-1, -1.5, -12).Normalize()
	hit, ok := sc.Intersect(math3d.Zero3(), dir)
	if !ok {
		t.Fatal("Expected hit on reference scene")
	}
	if hit.Material != RedRubber {
		t.Errorf("Expected red rubber, got %v", hit.Material)
	}
}

func TestNewCopiesInputs(t *testing.T) {
	spheres := []Sphere{NewSphere(math3d.V3(0, 0, -5), 1, red)}
	lights := []Light{NewLight(math3d.Zero3(), 1)}

	sc := New(spheres, lights)
	spheres[0].Radius = 100
	lights[0].Intensity = 0

	if sc.Spheres[0].Radius != 1 {
		t.Errorf("Scene sphere changed with caller slice: radius %v", sc.Spheres[0].Radius)
	}
	if sc.Lights[0].Intensity != 1 {
		t.Errorf("Scene light changed with caller slice: intensity %v", sc.Lights[0].Intensity)
	}
}

func TestNamedScenes(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Named(name); !ok {
			t.Errorf("Named(%q) not found", name)
		}
	}
	if _, ok := Named("cornell"); ok {
		t.Error("Named should reject unknown scenes")
	}

	ref := Reference()
	if len(ref.Spheres) != 4 || len(ref.Lights) != 1 {
		t.Errorf("Reference scene has %d spheres and %d lights, want 4 and 1", len(ref.Spheres), len(ref.Lights))
	}
}
