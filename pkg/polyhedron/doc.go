// Package polyhedron generates geodesic and Goldberg polyhedra.
//
// A build starts from the 12-vertex icosahedron, subdivides every face into
// a triangular grid projected onto a sphere, optionally replaces every
// vertex with a pentagonal or hexagonal hub (vertex truncation), and
// finishes with smooth per-vertex normals:
//
//	ico, err := polyhedron.BuildIcosahedron(1, 2)
//	ball, err := polyhedron.BuildTruncatedIcosahedron(1, 1)
//
// A finished Polyhedron is an immutable value. The generator performs no
// I/O and is safe to call from multiple goroutines as long as each call
// builds its own Polyhedron.
package polyhedron
