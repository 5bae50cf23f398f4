package polyhedron

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRadius is returned when the radius is not a finite positive number.
	ErrInvalidRadius = errors.New("polyhedron: radius must be finite and positive")

	// ErrInvalidDetail is returned for a negative subdivision level.
	ErrInvalidDetail = errors.New("polyhedron: detail must be non-negative")

	// ErrMalformedTopology is wrapped by every TopologyError.
	ErrMalformedTopology = errors.New("polyhedron: malformed topology")
)

// TopologyError reports a construction step that found the source mesh
// violating a topology precondition. Vertex and Triangle are -1 when not
// applicable.
type TopologyError struct {
	Vertex   int
	Triangle int
	Reason   string
}

func (e *TopologyError) Error() string {
	switch {
	case e.Vertex >= 0 && e.Triangle >= 0:
		return fmt.Sprintf("polyhedron: vertex %d, triangle %d: %s", e.Vertex, e.Triangle, e.Reason)
	case e.Vertex >= 0:
		return fmt.Sprintf("polyhedron: vertex %d: %s", e.Vertex, e.Reason)
	case e.Triangle >= 0:
		return fmt.Sprintf("polyhedron: triangle %d: %s", e.Triangle, e.Reason)
	}
	return "polyhedron: " + e.Reason
}

func (e *TopologyError) Unwrap() error { return ErrMalformedTopology }
