// Package kernel defines the abstract geometry kernel interface.
// Implementations produce icosahedral solids behind this interface and
// flatten them into render-ready meshes, so the tessellator and the
// exporters never depend on a particular generator.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Icosahedron returns a geodesic sphere: the icosahedron subdivided
	// 2^detail times per edge and projected onto the sphere of radius.
	Icosahedron(radius float64, detail int) (Solid, error)

	// Goldberg returns the vertex-truncated dual of the geodesic sphere
	// with the same radius and detail.
	Goldberg(radius float64, detail int) (Solid, error)

	// ToMesh flattens a solid into a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
