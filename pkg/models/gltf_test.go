package models

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/glint/pkg/scene"
)

func TestGLTFExporterCreation(t *testing.T) {
	e := NewGLTFExporter()
	if e == nil {
		t.Fatal("NewGLTFExporter returned nil")
	}
	if e.Stacks < 2 || e.Slices < 3 {
		t.Errorf("Unusable default tessellation %dx%d", e.Stacks, e.Slices)
	}
}

func TestDocumentNodesAndMaterials(t *testing.T) {
	sc := scene.Reference()
	doc := NewGLTFExporter().Document(sc)

	if len(doc.Meshes) != len(sc.Spheres) {
		t.Errorf("Expected %d meshes, got %d", len(sc.Spheres), len(doc.Meshes))
	}
	if len(doc.Materials) != len(sc.Spheres) {
		t.Errorf("Expected %d materials, got %d", len(sc.Spheres), len(doc.Materials))
	}
	if want := len(sc.Spheres) + len(sc.Lights); len(doc.Scenes[0].Nodes) != want {
		t.Errorf("Expected %d scene nodes, got %d", want, len(doc.Scenes[0].Nodes))
	}

	light := doc.Nodes[len(doc.Nodes)-1]
	if light.Name != "light_0" || light.Mesh != nil {
		t.Errorf("Unexpected light node %+v", light)
	}
	if light.Translation != [3]float64{-20, 20, 20} {
		t.Errorf("Light translation = %v", light.Translation)
	}
	if extras, ok := light.Extras.(map[string]any); !ok || extras["intensity"] != 1.5 {
		t.Errorf("Light extras = %v", light.Extras)
	}
}

func TestExportGLBReopens(t *testing.T) {
	sc := scene.Reference()
	path := filepath.Join(t.TempDir(), "scene.glb")

	if err := ExportGLB(sc, path); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("gltf.Open: %v", err)
	}
	if len(doc.Meshes) != len(sc.Spheres) {
		t.Fatalf("Expected %d meshes, got %d", len(sc.Spheres), len(doc.Meshes))
	}

	for i, s := range sc.Spheres {
		prim := doc.Meshes[i].Primitives[0]

		mat := doc.Materials[*prim.Material]
		c := s.Material.DiffuseColor
		if got := *mat.PBRMetallicRoughness.BaseColorFactor; got != [4]float64{c.X, c.Y, c.Z, 1} {
			t.Errorf("sphere %d base color = %v, want %v", i, got, c)
		}

		pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
		lo, hi := s.Bounds()
		want := [][]float64{{lo.X, lo.Y, lo.Z}, {hi.X, hi.Y, hi.Z}}
		got := [][]float64{pos.Min, pos.Max}
		for k := range want {
			if len(got[k]) != 3 {
				t.Fatalf("sphere %d position accessor bounds missing: %v", i, got[k])
			}
			for axis := range 3 {
				if math.Abs(got[k][axis]-want[k][axis]) > 1e-4*s.Radius+1e-5*math.Abs(want[k][axis]) {
					t.Errorf("sphere %d bound %d axis %d = %v, want %v", i, k, axis, got[k][axis], want[k][axis])
				}
			}
		}
	}
}

func TestExportGLBInvalidPath(t *testing.T) {
	if err := ExportGLB(scene.Reference(), "/nonexistent/dir/scene.glb"); err == nil {
		t.Error("Expected error for nonexistent directory")
	}
}
