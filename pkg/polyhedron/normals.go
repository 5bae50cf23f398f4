package polyhedron

import "github.com/chazu/goldberg/pkg/vec"

// windingFix is a scheduled rewrite of one cell to the opposite winding.
type windingFix struct {
	cell     int
	triangle Triangle
}

// ComputeTriangleNormals derives an outward face normal for every cell,
// schedules winding correction for cells wound clockwise from outside and
// stores smooth vertex normals in p.Normals.
//
// Vertex normals are the unweighted sum of adjacent face normals,
// normalized; faces are neither area- nor angle-weighted. A cell
// receives either a normal flip or a winding fix, never both. Fixes are
// applied after every cell has been measured.
func (p *Polyhedron) ComputeTriangleNormals() {
	fixes := p.accumulateNormals()

	for _, f := range fixes {
		p.Cells[f.cell] = f.triangle
	}

	for i, n := range p.Normals {
		p.Normals[i] = n.Normalize()
	}

	Logger().Debug("computed normals",
		"vertices", len(p.Normals),
		"triangles", len(p.Cells),
		"winding_fixes", len(fixes))
}

// accumulateNormals adds every cell's outward normal into its vertices'
// running sums and returns the winding fixes to apply. It never modifies
// p.Cells.
func (p *Polyhedron) accumulateNormals() []windingFix {
	var fixes []windingFix
	for id, t := range p.Cells {
		a, b, c := p.Positions[t.A], p.Positions[t.B], p.Positions[t.C]
		n := a.Sub(b).Cross(c.Sub(b))

		// (A-B)×(C-B) points inward for a counter-clockwise cell.
		if n.Dot(b.Sub(vec.Zero)) < 0 {
			n = n.Neg()
		} else {
			fixes = append(fixes, windingFix{cell: id, triangle: t.Reversed()})
		}

		p.Normals[t.A] = p.Normals[t.A].Add(n)
		p.Normals[t.B] = p.Normals[t.B].Add(n)
		p.Normals[t.C] = p.Normals[t.C].Add(n)
	}
	return fixes
}
