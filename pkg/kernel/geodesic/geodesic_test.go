package geodesic

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/goldberg/pkg/kernel"
	"github.com/chazu/goldberg/pkg/polyhedron"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestIcosahedronToMesh(t *testing.T) {
	k := New()
	s, err := k.Icosahedron(1, 1)
	if err != nil {
		t.Fatalf("Icosahedron: %v", err)
	}
	m, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if m.VertexCount() != 42 {
		t.Errorf("VertexCount() = %d, want 42", m.VertexCount())
	}
	if m.TriangleCount() != 80 {
		t.Errorf("TriangleCount() = %d, want 80", m.TriangleCount())
	}
	if m.FaceCount() != 80 {
		t.Errorf("FaceCount() = %d, want 80", m.FaceCount())
	}
	if len(m.Normals) != len(m.Vertices) {
		t.Errorf("%d normal floats for %d vertex floats", len(m.Normals), len(m.Vertices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestGoldbergToMesh(t *testing.T) {
	k := New()
	s, err := k.Goldberg(1, 0)
	if err != nil {
		t.Fatalf("Goldberg: %v", err)
	}
	m, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if m.TriangleCount() != 120 {
		t.Errorf("TriangleCount() = %d, want 120", m.TriangleCount())
	}
	if m.FaceCount() != 12 {
		t.Errorf("FaceCount() = %d, want 12", m.FaceCount())
	}
	for fi, f := range m.Faces {
		for _, id := range f {
			if int(id) >= m.TriangleCount() {
				t.Errorf("face %d references triangle %d out of range", fi, id)
			}
		}
	}
}

func TestVerticesOnSphereSurface(t *testing.T) {
	const radius = 2.0
	sphere, err := sdf.Sphere3D(radius)
	if err != nil {
		t.Fatalf("Sphere3D: %v", err)
	}

	k := New()
	s, err := k.Icosahedron(radius, 2)
	if err != nil {
		t.Fatalf("Icosahedron: %v", err)
	}
	p, ok := Polyhedron(s)
	if !ok {
		t.Fatal("Polyhedron() failed on own solid")
	}
	for i, v := range p.Positions {
		d := sphere.Evaluate(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})
		if math.Abs(d) > 1e-9 {
			t.Errorf("vertex %d is %g from the sphere surface", i, d)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	k := New()
	s, err := k.Icosahedron(3, 2)
	if err != nil {
		t.Fatalf("Icosahedron: %v", err)
	}
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if min[i] < -3-1e-9 || max[i] > 3+1e-9 {
			t.Errorf("axis %d: box [%f, %f] exceeds radius 3", i, min[i], max[i])
		}
		if max[i]-min[i] < 5.5 {
			t.Errorf("axis %d: box [%f, %f] too small for radius 3", i, min[i], max[i])
		}
	}
}

func TestInvalidParamsPropagate(t *testing.T) {
	k := New()
	if _, err := k.Icosahedron(-1, 0); !errors.Is(err, polyhedron.ErrInvalidRadius) {
		t.Errorf("Icosahedron(-1) err = %v, want ErrInvalidRadius", err)
	}
	if _, err := k.Goldberg(1, -2); !errors.Is(err, polyhedron.ErrInvalidDetail) {
		t.Errorf("Goldberg(detail -2) err = %v, want ErrInvalidDetail", err)
	}
}

type foreignSolid struct{}

func (foreignSolid) BoundingBox() (min, max [3]float64) { return }

var _ kernel.Solid = foreignSolid{}

func TestToMeshRejectsForeignSolid(t *testing.T) {
	if _, err := New().ToMesh(foreignSolid{}); err == nil {
		t.Error("expected error for a solid from another kernel")
	}
	if _, ok := Polyhedron(foreignSolid{}); ok {
		t.Error("Polyhedron() should fail for a foreign solid")
	}
}

func TestKernelOptions(t *testing.T) {
	k := New(polyhedron.WithPrecision(1e6))
	s, err := k.Icosahedron(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := Polyhedron(s)
	if p.Precision() != 1e6 {
		t.Errorf("Precision() = %v, want 1e6", p.Precision())
	}
}
