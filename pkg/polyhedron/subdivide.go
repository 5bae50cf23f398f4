package polyhedron

import (
	"fmt"

	"github.com/chazu/goldberg/pkg/vec"
)

// Subdivide splits every triangle of src into a 2^detail triangular grid,
// projects each grid vertex onto the sphere of the given radius and
// appends the resulting triangles to p. Shared edges between neighbouring
// source triangles collapse through the vertex cache.
//
// On error p is left partially built and must be discarded.
func (p *Polyhedron) Subdivide(src *Polyhedron, radius float64, detail int) error {
	if err := validateParams(radius, detail); err != nil {
		return err
	}
	for id, t := range src.Cells {
		if err := src.checkCell(id, t); err != nil {
			return err
		}
		p.subdivideTriangle(src.Positions[t.A], src.Positions[t.B], src.Positions[t.C], radius, detail)
	}
	Logger().Debug("subdivided",
		"source_triangles", len(src.Cells),
		"detail", detail,
		"positions", len(p.Positions),
		"triangles", len(p.Cells))
	return nil
}

func (p *Polyhedron) subdivideTriangle(a, b, c vec.Vector3, radius float64, detail int) {
	cols := 1 << detail
	grid := make([][]vec.Vector3, cols+1)

	for i := 0; i <= cols; i++ {
		alpha := float64(i) / float64(cols)
		aj := a.Lerp(c, alpha)
		bj := b.Lerp(c, alpha)
		rows := cols - i

		grid[i] = make([]vec.Vector3, rows+1)
		if rows == 0 {
			// Apex row collapses to a single point.
			grid[i][0] = aj.Normalize().Scale(radius)
			continue
		}
		for j := 0; j <= rows; j++ {
			grid[i][j] = aj.Lerp(bj, float64(j)/float64(rows)).Normalize().Scale(radius)
		}
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			var t Triangle
			if j%2 == 0 {
				t = Triangle{
					A: p.AddPosition(grid[i][k+1]),
					B: p.AddPosition(grid[i+1][k]),
					C: p.AddPosition(grid[i][k]),
				}
			} else {
				t = Triangle{
					A: p.AddPosition(grid[i][k+1]),
					B: p.AddPosition(grid[i+1][k+1]),
					C: p.AddPosition(grid[i+1][k]),
				}
			}
			p.addCell(t)
		}
	}
}

// checkCell reports a TopologyError if t references a missing position.
func (p *Polyhedron) checkCell(id int, t Triangle) error {
	for _, i := range t.Indices() {
		if i < 0 || i >= len(p.Positions) {
			return &TopologyError{
				Vertex:   i,
				Triangle: id,
				Reason:   fmt.Sprintf("index out of range [0,%d)", len(p.Positions)),
			}
		}
	}
	return nil
}
