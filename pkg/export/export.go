// Package export writes tessellated meshes to interchange formats (binary
// STL, binary glTF, COLLADA) and packs them into interleaved GPU vertex
// buffers.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/goldberg/pkg/kernel"
)

// ErrNoParts is returned when an export is asked to write nothing.
var ErrNoParts = errors.New("export: no parts to write")

// Format names an output file format.
type Format string

const (
	FormatSTL     Format = "stl"
	FormatGLB     Format = "glb"
	FormatCollada Format = "dae"
)

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "stl":
		return FormatSTL, nil
	case "glb", "gltf":
		return FormatGLB, nil
	case "dae", "collada":
		return FormatCollada, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", s)
	}
}

// FormatFromPath derives the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Part is one mesh together with its display color.
type Part struct {
	Mesh  *kernel.Mesh
	Color Color
}

// Export writes parts to path in format. Vertex colors are drawn from
// colors when it is non-nil; otherwise each part uses its own Color.
// Parent directories are created as needed.
func Export(format Format, path string, parts []Part, colors ColorSource) error {
	if len(parts) == 0 {
		return ErrNoParts
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	switch format {
	case FormatSTL:
		return WriteSTL(path, parts)
	case FormatGLB:
		return WriteGLB(path, parts, colors)
	case FormatCollada:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := writeCollada(f, parts, colors); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// checkMesh reports structural problems that would make a mesh unwritable.
func checkMesh(m *kernel.Mesh) error {
	if m == nil {
		return errors.New("export: nil mesh")
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("export: mesh %q has %d vertex floats, not a multiple of 3", m.PartName, len(m.Vertices))
	}
	if len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("export: mesh %q has %d normal floats for %d vertex floats",
			m.PartName, len(m.Normals), len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("export: mesh %q has %d indices, not a multiple of 3", m.PartName, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("export: mesh %q index %d = %d out of range [0,%d)", m.PartName, i, idx, n)
		}
	}
	return nil
}
