package polyhedron

import "github.com/chazu/goldberg/pkg/vec"

// TruncateStats classifies the hubs produced by Truncate by side count.
type TruncateStats struct {
	Pentagons int
	Hexagons  int
	Other     int
}

// Hubs returns the total number of hubs.
func (s TruncateStats) Hubs() int {
	return s.Pentagons + s.Hexagons + s.Other
}

func (s *TruncateStats) count(sides int) {
	switch sides {
	case 5:
		s.Pentagons++
	case 6:
		s.Hexagons++
	default:
		s.Other++
	}
}

// edgeKey identifies an undirected edge of the source mesh.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// truncation holds the lookups of one Truncate pass.
type truncation struct {
	src         *Polyhedron
	dst         *Polyhedron
	centroids   []vec.Vector3
	vertexFaces [][]int // ascending triangle ids per source vertex
	mids        map[edgeKey]vec.Vector3
}

func newTruncation(dst, src *Polyhedron) *truncation {
	tr := &truncation{
		src:         src,
		dst:         dst,
		centroids:   make([]vec.Vector3, len(src.Cells)),
		vertexFaces: make([][]int, len(src.Positions)),
		mids:        make(map[edgeKey]vec.Vector3, len(src.Cells)*3/2),
	}
	for id, c := range src.Cells {
		tr.centroids[id] = src.Centroid(id)
		tr.vertexFaces[c.A] = append(tr.vertexFaces[c.A], id)
		tr.vertexFaces[c.B] = append(tr.vertexFaces[c.B], id)
		tr.vertexFaces[c.C] = append(tr.vertexFaces[c.C], id)
	}
	return tr
}

// Truncate replaces every vertex of the triangulated convex polyhedron src
// with a hub polygon whose side count is the vertex degree, and appends
// the re-triangulated surface to p. Each hub is a fan of two triangles per
// incident source face, recorded as one entry in p.Faces.
//
// On error p is left partially built and must be discarded.
func (p *Polyhedron) Truncate(src *Polyhedron) (TruncateStats, error) {
	var stats TruncateStats
	for id, c := range src.Cells {
		if err := src.checkCell(id, c); err != nil {
			return stats, err
		}
	}

	tr := newTruncation(p, src)
	for v := range src.Positions {
		faces := tr.vertexFaces[v]
		if len(faces) == 0 {
			return stats, &TopologyError{Vertex: v, Triangle: -1, Reason: "vertex has no incident faces"}
		}
		stats.count(len(faces))

		hub, err := tr.hub(v, faces)
		if err != nil {
			return stats, err
		}
		p.Faces = append(p.Faces, hub)
	}

	Logger().Debug("truncated",
		"source_vertices", len(src.Positions),
		"pentagons", stats.Pentagons,
		"hexagons", stats.Hexagons,
		"other", stats.Other,
		"triangles", len(p.Cells))
	return stats, nil
}

// hub emits the triangle fan replacing source vertex v and returns the
// new triangle ids.
func (tr *truncation) hub(v int, faces []int) ([]int, error) {
	center := vec.Zero
	for _, f := range faces {
		center = center.Add(tr.centroids[f])
	}
	center = center.Div(float64(len(faces)))

	ids := make([]int, 0, 2*len(faces))
	for _, f := range faces {
		other, ok := tr.otherVertices(v, f)
		if !ok {
			return nil, &TopologyError{Vertex: v, Triangle: f, Reason: "triangle is degenerate at vertex"}
		}
		midP, err := tr.midCentroid(v, other[0], f, faces)
		if err != nil {
			return nil, err
		}
		midQ, err := tr.midCentroid(v, other[1], f, faces)
		if err != nil {
			return nil, err
		}

		d := tr.dst
		hubIdx := d.AddPosition(center)
		centroidIdx := d.AddPosition(tr.centroids[f])
		midPIdx := d.AddPosition(midP)
		midQIdx := d.AddPosition(midQ)

		ids = append(ids,
			d.addCell(Triangle{A: hubIdx, B: midQIdx, C: centroidIdx}),
			d.addCell(Triangle{A: hubIdx, B: centroidIdx, C: midPIdx}),
		)
	}
	return ids, nil
}

// otherVertices returns the two vertices of triangle f besides v, in the
// triangle's order.
func (tr *truncation) otherVertices(v, f int) ([2]int, bool) {
	var out [2]int
	n := 0
	for _, i := range tr.src.Cells[f].Indices() {
		if i == v {
			continue
		}
		if n == 2 {
			return out, false
		}
		out[n] = i
		n++
	}
	return out, n == 2
}

// midCentroid returns the midpoint between the centroids of the two faces
// sharing edge (spoke, far). The value is cached per undirected edge and
// always computed from the lower face id towards the higher, so every
// caller sees the identical point.
func (tr *truncation) midCentroid(spoke, far, f int, faces []int) (vec.Vector3, error) {
	key := makeEdgeKey(spoke, far)
	if m, ok := tr.mids[key]; ok {
		return m, nil
	}

	adj, ok := tr.adjacentFace(spoke, far, f, faces)
	if !ok {
		return vec.Zero, &TopologyError{Vertex: spoke, Triangle: f, Reason: "no adjacent face across spoke edge"}
	}

	lo, hi := f, adj
	if lo > hi {
		lo, hi = hi, lo
	}
	m := tr.centroids[lo].Lerp(tr.centroids[hi], 0.5)
	tr.mids[key] = m
	return m, nil
}

// adjacentFace finds the face among faces, other than f, that contains
// both spoke and far.
func (tr *truncation) adjacentFace(spoke, far, f int, faces []int) (int, bool) {
	for _, g := range faces {
		if g == f {
			continue
		}
		t := tr.src.Cells[g]
		if t.Has(spoke) && t.Has(far) {
			return g, true
		}
	}
	return 0, false
}
