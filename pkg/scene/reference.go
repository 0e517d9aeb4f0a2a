package scene

import "github.com/taigrr/glint/pkg/math3d"

// Materials used by the reference scene.
var (
	Ivory     = NewMaterial(math3d.V3(0.4, 0.4, 0.3))
	RedRubber = NewMaterial(math3d.V3(0.3, 0.1, 0.1))
)

// Reference returns the four-sphere, one-light scene glint renders by
// default.
func Reference() *Scene {
	return New(
		[]Sphere{
			NewSphere(math3d.V3(-3, 0, -16), 2, Ivory),
			NewSphere(math3d.V3(-1, -1.5, -12), 2, RedRubber),
			NewSphere(math3d.V3(1.5, -0.5, -18), 3, RedRubber),
			NewSphere(math3d.V3(7, 5, -18), 4, Ivory),
		},
		[]Light{
			NewLight(math3d.V3(-20, 20, 20), 1.5),
		},
	)
}

// Named returns a built-in scene by name.
func Named(name string) (*Scene, bool) {
	switch name {
	case "reference", "":
		return Reference(), true
	case "empty":
		return Empty(), true
	}
	return nil, false
}

// Names lists the built-in scenes accepted by Named.
func Names() []string {
	return []string{"reference", "empty"}
}
