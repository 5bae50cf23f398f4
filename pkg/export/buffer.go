package export

import (
	"math"

	"github.com/chazu/goldberg/pkg/kernel"
)

// Stride is the number of floats per interleaved vertex:
// position (3), normal (3), color (3).
const Stride = 9

// VertexBuffer is a mesh packed for GPU upload. Exactly one of Indices16
// and Indices32 is populated.
type VertexBuffer struct {
	Vertices  []float32
	Indices16 []uint16 // set when every index fits in 16 bits
	Indices32 []uint32
}

// VertexCount returns the number of packed vertices.
func (b *VertexBuffer) VertexCount() int {
	return len(b.Vertices) / Stride
}

// IndexCount returns the number of indices.
func (b *VertexBuffer) IndexCount() int {
	if b.Indices32 != nil {
		return len(b.Indices32)
	}
	return len(b.Indices16)
}

// Wide reports whether the buffer uses 32-bit indices.
func (b *VertexBuffer) Wide() bool {
	return b.Indices32 != nil
}

// Interleave packs m into a vertex buffer. Each vertex gets its own color
// from colors, or White when colors is nil. Triangle winding is preserved,
// so counter-clockwise remains the front face.
func Interleave(m *kernel.Mesh, colors ColorSource) (*VertexBuffer, error) {
	if err := checkMesh(m); err != nil {
		return nil, err
	}

	n := m.VertexCount()
	buf := &VertexBuffer{Vertices: make([]float32, 0, n*Stride)}
	for i := 0; i < n; i++ {
		c := next(colors, White)
		buf.Vertices = append(buf.Vertices, m.Vertices[3*i:3*i+3]...)
		buf.Vertices = append(buf.Vertices, m.Normals[3*i:3*i+3]...)
		buf.Vertices = append(buf.Vertices, c[:]...)
	}

	if n <= math.MaxUint16+1 {
		buf.Indices16 = make([]uint16, len(m.Indices))
		for i, idx := range m.Indices {
			buf.Indices16[i] = uint16(idx)
		}
	} else {
		buf.Indices32 = make([]uint32, len(m.Indices))
		copy(buf.Indices32, m.Indices)
	}
	return buf, nil
}
