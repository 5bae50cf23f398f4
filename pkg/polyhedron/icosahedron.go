package polyhedron

import (
	"math"

	"github.com/chazu/goldberg/pkg/vec"
)

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// icosahedronVertices are the 12 unnormalized icosahedron corners in
// canonical order. icosahedronCells indexes into this order.
var icosahedronVertices = [12]vec.Vector3{
	{X: -1, Y: phi, Z: 0},
	{X: 1, Y: phi, Z: 0},
	{X: -1, Y: -phi, Z: 0},
	{X: 1, Y: -phi, Z: 0},
	{X: 0, Y: -1, Z: phi},
	{X: 0, Y: 1, Z: phi},
	{X: 0, Y: -1, Z: -phi},
	{X: 0, Y: 1, Z: -phi},
	{X: phi, Y: 0, Z: -1},
	{X: phi, Y: 0, Z: 1},
	{X: -phi, Y: 0, Z: -1},
	{X: -phi, Y: 0, Z: 1},
}

// icosahedronCells is the fixed connectivity of the base solid. Every
// triangle is wound counter-clockwise from outside.
var icosahedronCells = [20]Triangle{
	// 5 faces around vertex 0
	{0, 11, 5},
	{0, 5, 1},
	{0, 1, 7},
	{0, 7, 10},
	{0, 10, 11},

	// 5 adjacent faces
	{1, 5, 9},
	{5, 11, 4},
	{11, 10, 2},
	{10, 7, 6},
	{7, 1, 8},

	// 5 faces around vertex 3
	{3, 9, 4},
	{3, 4, 2},
	{3, 2, 6},
	{3, 6, 8},
	{3, 8, 9},

	// 5 adjacent faces
	{4, 9, 5},
	{2, 4, 11},
	{6, 2, 10},
	{8, 6, 7},
	{9, 8, 1},
}

// BaseIcosahedron returns the 12-vertex, 20-triangle icosahedron with
// unnormalized corners (edge length 2). It has no faces or normals.
func BaseIcosahedron(opts ...Option) *Polyhedron {
	p := New(opts...)
	for _, v := range icosahedronVertices {
		p.AddPosition(v)
	}
	p.Cells = append(p.Cells, icosahedronCells[:]...)
	return p
}
