package models

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/glint/pkg/scene"
)

// GLTFExporter converts scenes into glTF documents.
type GLTFExporter struct {
	// Tessellation of each sphere
	Stacks int
	Slices int
}

// NewGLTFExporter creates a new exporter with default options.
func NewGLTFExporter() *GLTFExporter {
	return &GLTFExporter{
		Stacks: 24,
		Slices: 48,
	}
}

// ExportGLB writes the scene as a binary glTF (.glb) file.
func ExportGLB(sc *scene.Scene, path string) error {
	return NewGLTFExporter().Save(sc, path)
}

// Save writes the scene as a binary glTF file.
func (e *GLTFExporter) Save(sc *scene.Scene, path string) error {
	doc := e.Document(sc)
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

// Document builds a glTF document with one mesh node per sphere and one
// empty node per light. Light nodes are named light_<i>, sit at the light
// position, and carry the intensity in their extras.
func (e *GLTFExporter) Document(sc *scene.Scene) *gltf.Document {
	doc := gltf.NewDocument()

	for i, s := range sc.Spheres {
		name := fmt.Sprintf("sphere_%d", i)
		mesh := NewSphereMesh(name, s, e.Stacks, e.Slices)
		node := addMesh(doc, mesh)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, node)
	}

	for i, l := range sc.Lights {
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        fmt.Sprintf("light_%d", i),
			Translation: [3]float64{l.Position.X, l.Position.Y, l.Position.Z},
			Extras:      map[string]any{"intensity": l.Intensity},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc
}

// addMesh writes the mesh geometry and its first material into the
// document and returns the index of a node referencing it.
func addMesh(doc *gltf.Document, m *Mesh) int {
	positions := make([][3]float32, len(m.Vertices))
	normals := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)}
		normals[i] = [3]float32{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)}
	}

	indices := make([]uint32, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		indices = append(indices, uint32(f.V[0]), uint32(f.V[1]), uint32(f.V[2]))
	}

	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.NORMAL:   modeler.WriteNormal(doc, normals),
		},
	}

	if len(m.Materials) > 0 {
		mat := m.Materials[0]
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: mat.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &mat.BaseColor,
				MetallicFactor:  gltf.Float(mat.Metallic),
				RoughnessFactor: gltf.Float(mat.Roughness),
			},
		})
		prim.Material = gltf.Index(len(doc.Materials) - 1)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       m.Name,
		Primitives: []*gltf.Primitive{prim},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	return len(doc.Nodes) - 1
}
