package graph

import "fmt"

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// Shape distinguishes between the generated polyhedra.
type Shape int

const (
	ShapeIcosahedron Shape = iota // subdivided geodesic icosahedron
	ShapeGoldberg                 // truncated geodesic (pentagon/hexagon hubs)
)

func (s Shape) String() string {
	switch s {
	case ShapeIcosahedron:
		return "icosahedron"
	case ShapeGoldberg:
		return "goldberg"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name to its Shape. "truncated-icosahedron" is
// accepted as an alias for goldberg.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "icosahedron":
		return ShapeIcosahedron, nil
	case "goldberg", "truncated-icosahedron", "truncated_icosahedron":
		return ShapeGoldberg, nil
	default:
		return 0, fmt.Errorf("graph: unknown shape %q", name)
	}
}

// ShapeData describes one sphere-like polyhedron part.
type ShapeData struct {
	Shape  Shape   `json:"shape"`
	Radius float64 `json:"radius"` // circumscribed radius
	Detail int     `json:"detail"` // subdivision level; 2^detail columns per edge
}

func (ShapeData) nodeData() {}

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData represents a logical grouping of parts.
// Created by the (assembly ...) Lisp form.
type GroupData struct {
	Description string `json:"description,omitempty"`
}

func (GroupData) nodeData() {}
