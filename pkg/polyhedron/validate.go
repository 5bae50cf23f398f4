package polyhedron

import "fmt"

// Validate checks the structural invariants of p: one normal per position,
// every cell index in range, every face id in range.
func (p *Polyhedron) Validate() error {
	if len(p.Normals) != len(p.Positions) {
		return &TopologyError{
			Vertex:   -1,
			Triangle: -1,
			Reason:   fmt.Sprintf("%d normals for %d positions", len(p.Normals), len(p.Positions)),
		}
	}
	for id, t := range p.Cells {
		if err := p.checkCell(id, t); err != nil {
			return err
		}
	}
	for fi, face := range p.Faces {
		for _, id := range face {
			if id < 0 || id >= len(p.Cells) {
				return &TopologyError{
					Vertex:   -1,
					Triangle: id,
					Reason:   fmt.Sprintf("face %d references triangle out of range [0,%d)", fi, len(p.Cells)),
				}
			}
		}
	}
	return nil
}
