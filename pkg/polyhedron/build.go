package polyhedron

import (
	"fmt"
	"math"
)

// MaxDetail is the deepest subdivision level accepted. At this level a
// geodesic sphere already has 20·4^12 (about 335 million) triangles.
const MaxDetail = 12

func validateParams(radius float64, detail int) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if detail < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDetail, detail)
	}
	if detail > MaxDetail {
		return fmt.Errorf("%w: got %d, maximum is %d", ErrInvalidDetail, detail, MaxDetail)
	}
	return nil
}

// BuildIcosahedron returns the geodesic sphere of the given radius: the
// base icosahedron subdivided 2^detail times per edge, every vertex on the
// sphere, one face per triangle and smooth vertex normals.
func BuildIcosahedron(radius float64, detail int, opts ...Option) (*Polyhedron, error) {
	p, err := geodesic(radius, detail, opts)
	if err != nil {
		return nil, err
	}
	p.ComputeTriangleNormals()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("icosahedron: %w", err)
	}
	return p, nil
}

// BuildTruncatedIcosahedron returns the Goldberg polyhedron dual to the
// geodesic sphere of the same radius and detail: every geodesic vertex
// becomes a pentagonal or hexagonal hub. Faces groups triangles by hub.
//
// Detail 0 yields 12 pentagonal hubs; each further level adds hexagons.
func BuildTruncatedIcosahedron(radius float64, detail int, opts ...Option) (*Polyhedron, error) {
	src, err := geodesic(radius, detail, opts)
	if err != nil {
		return nil, err
	}

	p := New(opts...)
	if _, err := p.Truncate(src); err != nil {
		return nil, fmt.Errorf("truncated icosahedron: %w", err)
	}
	p.ComputeTriangleNormals()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("truncated icosahedron: %w", err)
	}
	return p, nil
}

// geodesic builds the subdivided icosahedron without normals.
func geodesic(radius float64, detail int, opts []Option) (*Polyhedron, error) {
	if err := validateParams(radius, detail); err != nil {
		return nil, err
	}
	p := New(opts...)
	if err := p.Subdivide(BaseIcosahedron(opts...), radius, detail); err != nil {
		return nil, fmt.Errorf("icosahedron: %w", err)
	}
	p.TrianglesToFaces()
	return p, nil
}
