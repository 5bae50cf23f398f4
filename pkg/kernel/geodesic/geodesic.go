// Package geodesic implements the kernel.Kernel interface on top of the
// icosahedral polyhedron generator.
package geodesic

import (
	"fmt"
	"math"

	"github.com/chazu/goldberg/pkg/kernel"
	"github.com/chazu/goldberg/pkg/polyhedron"
)

// Compile-time interface check.
var _ kernel.Kernel = (*GeodesicKernel)(nil)

// solid wraps a finished polyhedron to implement kernel.Solid.
type solid struct {
	p *polyhedron.Polyhedron
}

// BoundingBox returns the axis-aligned bounding box.
func (s *solid) BoundingBox() (min, max [3]float64) {
	if len(s.p.Positions) == 0 {
		return min, max
	}
	min = s.p.Positions[0].Array()
	max = min
	for _, v := range s.p.Positions[1:] {
		a := v.Array()
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], a[i])
			max[i] = math.Max(max[i], a[i])
		}
	}
	return min, max
}

// GeodesicKernel implements kernel.Kernel using package polyhedron.
type GeodesicKernel struct {
	opts []polyhedron.Option
}

// New returns a GeodesicKernel. The options are passed to every build.
func New(opts ...polyhedron.Option) *GeodesicKernel {
	return &GeodesicKernel{opts: opts}
}

// Icosahedron builds a geodesic sphere.
func (k *GeodesicKernel) Icosahedron(radius float64, detail int) (kernel.Solid, error) {
	p, err := polyhedron.BuildIcosahedron(radius, detail, k.opts...)
	if err != nil {
		return nil, err
	}
	return &solid{p: p}, nil
}

// Goldberg builds a truncated icosahedron.
func (k *GeodesicKernel) Goldberg(radius float64, detail int) (kernel.Solid, error) {
	p, err := polyhedron.BuildTruncatedIcosahedron(radius, detail, k.opts...)
	if err != nil {
		return nil, err
	}
	return &solid{p: p}, nil
}

// Polyhedron returns the polyhedron behind a solid created by this
// package.
func Polyhedron(s kernel.Solid) (*polyhedron.Polyhedron, bool) {
	gs, ok := s.(*solid)
	if !ok {
		return nil, false
	}
	return gs.p, true
}

// ToMesh flattens the polyhedron into float32 vertex and normal arrays and
// uint32 indices. Face groups are carried over unchanged.
func (k *GeodesicKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	p, ok := Polyhedron(s)
	if !ok {
		return nil, fmt.Errorf("geodesic: unsupported solid type %T", s)
	}
	return MeshFromPolyhedron(p)
}

// MeshFromPolyhedron converts p to a kernel.Mesh.
func MeshFromPolyhedron(p *polyhedron.Polyhedron) (*kernel.Mesh, error) {
	if uint64(len(p.Positions)) > math.MaxUint32 || uint64(len(p.Cells)) > math.MaxUint32 {
		return nil, fmt.Errorf("geodesic: %d vertices and %d triangles exceed uint32 indices",
			len(p.Positions), len(p.Cells))
	}

	vertices := make([]float32, 0, 3*len(p.Positions))
	normals := make([]float32, 0, 3*len(p.Normals))
	indices := make([]uint32, 0, 3*len(p.Cells))
	faces := make([][]uint32, 0, len(p.Faces))

	for i, v := range p.Positions {
		n := p.Normals[i]
		vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
		normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	for _, t := range p.Cells {
		indices = append(indices, uint32(t.A), uint32(t.B), uint32(t.C))
	}
	for _, f := range p.Faces {
		ids := make([]uint32, len(f))
		for i, id := range f {
			ids[i] = uint32(id)
		}
		faces = append(faces, ids)
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		Faces:    faces,
	}, nil
}
