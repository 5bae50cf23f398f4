package export

import (
	"fmt"

	"github.com/chazu/goldberg/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Triangles converts m to sdfx triangles, keeping the mesh winding.
func Triangles(m *kernel.Mesh) ([]*sdf.Triangle3, error) {
	if err := checkMesh(m); err != nil {
		return nil, err
	}
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		var t sdf.Triangle3
		for j, idx := range m.Triangle(i) {
			p := m.Vertex(int(idx))
			t[j] = v3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
		}
		tris = append(tris, &t)
	}
	return tris, nil
}

// WriteSTL writes every part's triangles into one binary STL file at path.
// STL carries no color.
func WriteSTL(path string, parts []Part) error {
	if len(parts) == 0 {
		return ErrNoParts
	}
	var all []*sdf.Triangle3
	for _, p := range parts {
		tris, err := Triangles(p.Mesh)
		if err != nil {
			return err
		}
		all = append(all, tris...)
	}
	if err := render.SaveSTL(path, all); err != nil {
		return fmt.Errorf("export: stl: %w", err)
	}
	return nil
}
