package export

import (
	"fmt"

	"github.com/chazu/goldberg/pkg/kernel"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Generator is written into the asset header of every glTF file.
const Generator = "goldberg"

// Document builds a glTF document with one mesh and node per part. Each
// part gets an opaque material in its own color; vertex colors are added
// when colors is non-nil.
func Document(parts []Part, colors ColorSource) (*gltf.Document, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator

	for i, p := range parts {
		if err := checkMesh(p.Mesh); err != nil {
			return nil, err
		}
		positions, normals := splitVectors(p.Mesh)

		posAccessor := modeler.WritePosition(doc, positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		indicesAccessor := modeler.WriteIndices(doc, p.Mesh.Indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(posAccessor),
				gltf.NORMAL:   uint32(normalAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(uint32(i)),
		}
		if colors != nil {
			vc := make([][4]float32, len(positions))
			for j := range vc {
				c := next(colors, p.Color)
				vc[j] = [4]float32{c[0], c[1], c[2], 1}
			}
			prim.Attributes[gltf.COLOR_0] = uint32(modeler.WriteColor(doc, vc))
		}

		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: p.Mesh.PartName,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float32{p.Color[0], p.Color[1], p.Color[2], 1},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(1),
			},
			AlphaMode: gltf.AlphaOpaque,
		})
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       p.Mesh.PartName,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: p.Mesh.PartName,
			Mesh: gltf.Index(uint32(i)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(i))
	}
	return doc, nil
}

// WriteGLB writes parts as a binary glTF file at path.
func WriteGLB(path string, parts []Part, colors ColorSource) error {
	doc, err := Document(parts, colors)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export: glb: %w", err)
	}
	return nil
}

// splitVectors regroups the flat mesh arrays into per-vertex triples.
func splitVectors(m *kernel.Mesh) (positions, normals [][3]float32) {
	n := m.VertexCount()
	positions = make([][3]float32, n)
	normals = make([][3]float32, n)
	for i := 0; i < n; i++ {
		positions[i] = m.Vertex(i)
		normals[i] = m.Normal(i)
	}
	return positions, normals
}
