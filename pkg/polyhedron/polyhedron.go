package polyhedron

import "github.com/chazu/goldberg/pkg/vec"

// Triangle is an ordered triple of position indices. The order encodes
// winding: counter-clockwise as seen from outside the solid.
type Triangle struct {
	A, B, C int
}

// Indices returns the three indices in winding order.
func (t Triangle) Indices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// Has reports whether i is one of the triangle's vertices.
func (t Triangle) Has(i int) bool {
	return t.A == i || t.B == i || t.C == i
}

// Reversed returns the triangle with the opposite winding, keeping B in
// place: (c, b, a).
func (t Triangle) Reversed() Triangle {
	return Triangle{A: t.C, B: t.B, C: t.A}
}

// Polyhedron is a triangle mesh under construction, and the finished
// value handed to consumers once a build completes.
//
// Positions and Cells are append-only; the only in-place rewrite is
// winding correction in ComputeTriangleNormals. Normals always has the
// same length as Positions.
type Polyhedron struct {
	Positions []vec.Vector3
	Cells     []Triangle
	Normals   []vec.Vector3

	// Faces groups triangle ids (indices into Cells) into the logical
	// faces of the solid: one triangle each for a geodesic sphere, a fan
	// of triangles per hub for a truncated one.
	Faces [][]int

	cache *vertexCache
}

// New returns an empty Polyhedron.
func New(opts ...Option) *Polyhedron {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Polyhedron{cache: newVertexCache(o.precision)}
}

// Precision returns the vertex cache quantization factor.
func (p *Polyhedron) Precision() float64 {
	return p.vertexCache().precision
}

func (p *Polyhedron) vertexCache() *vertexCache {
	if p.cache == nil {
		p.cache = newVertexCache(DefaultPrecision)
	}
	return p.cache
}

// AddPosition registers v and returns its index. A position whose
// quantized coordinates match an earlier one returns the earlier index
// without creating a new position or normal slot.
func (p *Polyhedron) AddPosition(v vec.Vector3) int {
	c := p.vertexCache()
	k, i, ok := c.lookup(v)
	if ok {
		return i
	}
	p.Positions = append(p.Positions, v)
	p.Normals = append(p.Normals, vec.Zero)
	i = len(p.Positions) - 1
	c.store(k, i)
	return i
}

// addCell appends t and returns its triangle id.
func (p *Polyhedron) addCell(t Triangle) int {
	p.Cells = append(p.Cells, t)
	return len(p.Cells) - 1
}

// TrianglesToFaces appends one single-triangle face per cell.
func (p *Polyhedron) TrianglesToFaces() {
	for i := range p.Cells {
		p.Faces = append(p.Faces, []int{i})
	}
}

// VertexCount returns the number of positions.
func (p *Polyhedron) VertexCount() int { return len(p.Positions) }

// TriangleCount returns the number of cells.
func (p *Polyhedron) TriangleCount() int { return len(p.Cells) }

// FaceCount returns the number of face groups.
func (p *Polyhedron) FaceCount() int { return len(p.Faces) }

// Centroid returns the centroid of triangle id.
func (p *Polyhedron) Centroid(id int) vec.Vector3 {
	t := p.Cells[id]
	return centroid(p.Positions[t.A], p.Positions[t.B], p.Positions[t.C])
}

// centroid computes the triangle centroid as the point one third of the
// way from the midpoint of ab towards c.
func centroid(a, b, c vec.Vector3) vec.Vector3 {
	abHalf := a.Add(b.Sub(a).Div(2))
	return c.Sub(abHalf).Scale(1.0 / 3.0).Add(abHalf)
}
