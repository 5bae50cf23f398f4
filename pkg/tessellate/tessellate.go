// Package tessellate walks a scene graph and produces triangle meshes
// using a geometry kernel. One mesh is produced per part.
package tessellate

import (
	"fmt"

	"github.com/chazu/goldberg/pkg/graph"
	"github.com/chazu/goldberg/pkg/kernel"
)

// walker carries traversal state for one Tessellate call.
type walker struct {
	g       *graph.Graph
	k       kernel.Kernel
	emitted map[graph.NodeID]bool
	// meshes memoizes kernel output per shape so parts that share a shape
	// are generated once.
	meshes map[graph.ShapeData]*kernel.Mesh
}

// Tessellate walks the scene graph and produces one triangle mesh per
// primitive part using the provided geometry kernel. A part reachable from
// several roots or groups is emitted once, at its first visit. The
// tessellator is read-only and never mutates the graph.
func Tessellate(g *graph.Graph, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if g == nil {
		return nil, nil
	}

	w := &walker{
		g:       g,
		k:       k,
		emitted: make(map[graph.NodeID]bool),
		meshes:  make(map[graph.ShapeData]*kernel.Mesh),
	}

	var meshes []*kernel.Mesh
	for _, rootID := range g.Roots {
		root := g.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := w.walkNode(root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

// walkNode recursively traverses a node and its children, collecting meshes.
func (w *walker) walkNode(n *graph.Node) ([]*kernel.Mesh, error) {
	if w.emitted[n.ID] {
		return nil, nil
	}
	w.emitted[n.ID] = true

	switch n.Kind {
	case graph.NodePrimitive:
		return w.handlePrimitive(n)

	case graph.NodeGroup:
		return w.handleGroup(n)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// handlePrimitive creates geometry for a primitive node.
func (w *walker) handlePrimitive(n *graph.Node) ([]*kernel.Mesh, error) {
	data, ok := n.Data.(graph.ShapeData)
	if !ok {
		return nil, fmt.Errorf("primitive node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}

	shared, ok := w.meshes[data]
	if !ok {
		var (
			solid kernel.Solid
			err   error
		)
		switch data.Shape {
		case graph.ShapeIcosahedron:
			solid, err = w.k.Icosahedron(data.Radius, data.Detail)
		case graph.ShapeGoldberg:
			solid, err = w.k.Goldberg(data.Radius, data.Detail)
		default:
			return nil, fmt.Errorf("primitive node %s has unknown shape %s", n.ID.Short(), data.Shape)
		}
		if err != nil {
			return nil, fmt.Errorf("tessellate: building %s for node %s: %w", data.Shape, n.ID.Short(), err)
		}

		shared, err = w.k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
		}
		w.meshes[data] = shared
	}

	// Parts sharing a shape share buffers; only the header is copied.
	mesh := *shared

	// Set the part name: prefer the node's Name, fall back to short ID.
	if n.Name != "" {
		mesh.PartName = n.Name
	} else {
		mesh.PartName = n.ID.Short()
	}

	return []*kernel.Mesh{&mesh}, nil
}

// handleGroup recurses into children transparently.
func (w *walker) handleGroup(n *graph.Node) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range w.g.Children(n) {
		collected, err := w.walkNode(child)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}
