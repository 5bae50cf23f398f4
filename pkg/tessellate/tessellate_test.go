package tessellate_test

import (
	"errors"
	"testing"

	"github.com/chazu/goldberg/pkg/graph"
	"github.com/chazu/goldberg/pkg/kernel"
	"github.com/chazu/goldberg/pkg/kernel/geodesic"
	"github.com/chazu/goldberg/pkg/tessellate"
)

// newKernel returns a fresh geodesic kernel for testing.
func newKernel() kernel.Kernel {
	return geodesic.New()
}

// makeShape creates a shape primitive node with the given name.
func makeShape(name string, shape graph.Shape, radius float64, detail int) *graph.Node {
	return &graph.Node{
		ID:   graph.NewNodeID("defpart/" + name),
		Kind: graph.NodePrimitive,
		Name: name,
		Data: graph.ShapeData{Shape: shape, Radius: radius, Detail: detail},
	}
}

// makeGroup creates a group node with children.
func makeGroup(name string, children ...graph.NodeID) *graph.Node {
	return &graph.Node{
		ID:       graph.NewNodeID("assembly/" + name),
		Kind:     graph.NodeGroup,
		Name:     name,
		Children: children,
		Data:     graph.GroupData{Description: name},
	}
}

// countingKernel wraps a kernel and counts solid constructions.
type countingKernel struct {
	kernel.Kernel
	builds int
	err    error
}

func (c *countingKernel) Icosahedron(radius float64, detail int) (kernel.Solid, error) {
	c.builds++
	if c.err != nil {
		return nil, c.err
	}
	return c.Kernel.Icosahedron(radius, detail)
}

func (c *countingKernel) Goldberg(radius float64, detail int) (kernel.Solid, error) {
	c.builds++
	if c.err != nil {
		return nil, c.err
	}
	return c.Kernel.Goldberg(radius, detail)
}

func TestSingleGoldberg(t *testing.T) {
	g := graph.New()
	ball := makeShape("ball", graph.ShapeGoldberg, 1, 1)
	g.AddNode(ball)
	g.AddRoot(ball.ID)

	meshes, err := tessellate.Tessellate(g, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}

	m := meshes[0]
	if m.PartName != "ball" {
		t.Errorf("expected PartName %q, got %q", "ball", m.PartName)
	}
	if m.VertexCount() != 242 {
		t.Errorf("VertexCount() = %d, want 242", m.VertexCount())
	}
	if m.TriangleCount() != 480 {
		t.Errorf("TriangleCount() = %d, want 480", m.TriangleCount())
	}
	if m.FaceCount() != 42 {
		t.Errorf("FaceCount() = %d, want 42", m.FaceCount())
	}
}

func TestTwoParts(t *testing.T) {
	g := graph.New()
	ball := makeShape("ball", graph.ShapeGoldberg, 1, 0)
	dome := makeShape("dome", graph.ShapeIcosahedron, 2, 2)
	g.AddNode(ball)
	g.AddNode(dome)
	g.AddRoot(ball.ID)
	g.AddRoot(dome.ID)

	meshes, err := tessellate.Tessellate(g, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}

	// Roots are visited in order.
	if meshes[0].PartName != "ball" || meshes[1].PartName != "dome" {
		t.Errorf("part order = %q, %q", meshes[0].PartName, meshes[1].PartName)
	}
	if meshes[0].TriangleCount() != 120 {
		t.Errorf("ball triangles = %d, want 120", meshes[0].TriangleCount())
	}
	if meshes[1].TriangleCount() != 320 {
		t.Errorf("dome triangles = %d, want 320", meshes[1].TriangleCount())
	}
}

func TestAssembly(t *testing.T) {
	g := graph.New()
	a := makeShape("a", graph.ShapeGoldberg, 1, 0)
	b := makeShape("b", graph.ShapeIcosahedron, 1, 0)
	inner := makeGroup("inner", b.ID)
	outer := makeGroup("outer", a.ID, inner.ID)
	for _, n := range []*graph.Node{a, b, inner, outer} {
		g.AddNode(n)
	}
	g.AddRoot(outer.ID)

	meshes, err := tessellate.Tessellate(g, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes through nested groups, got %d", len(meshes))
	}
	if meshes[0].PartName != "a" || meshes[1].PartName != "b" {
		t.Errorf("part order = %q, %q", meshes[0].PartName, meshes[1].PartName)
	}
}

func TestSharedPartEmittedOnce(t *testing.T) {
	g := graph.New()
	a := makeShape("a", graph.ShapeGoldberg, 1, 0)
	left := makeGroup("left", a.ID)
	right := makeGroup("right", a.ID)
	for _, n := range []*graph.Node{a, left, right} {
		g.AddNode(n)
	}
	g.AddRoot(left.ID)
	g.AddRoot(right.ID)
	g.AddRoot(a.ID)

	meshes, err := tessellate.Tessellate(g, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected the shared part once, got %d meshes", len(meshes))
	}
}

func TestEqualShapesBuiltOnce(t *testing.T) {
	g := graph.New()
	a := makeShape("a", graph.ShapeGoldberg, 1, 1)
	b := makeShape("b", graph.ShapeGoldberg, 1, 1)
	c := makeShape("c", graph.ShapeGoldberg, 2, 1)
	for _, n := range []*graph.Node{a, b, c} {
		g.AddNode(n)
		g.AddRoot(n.ID)
	}

	k := &countingKernel{Kernel: newKernel()}
	meshes, err := tessellate.Tessellate(g, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if k.builds != 2 {
		t.Errorf("kernel builds = %d, want 2", k.builds)
	}
	if len(meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(meshes))
	}
	if meshes[0].PartName != "a" || meshes[1].PartName != "b" {
		t.Errorf("shared meshes lost their names: %q, %q", meshes[0].PartName, meshes[1].PartName)
	}
}

func TestAnonymousPartName(t *testing.T) {
	g := graph.New()
	n := makeShape("", graph.ShapeIcosahedron, 1, 0)
	n.ID = graph.NewNodeID("shape/1")
	g.AddNode(n)
	g.AddRoot(n.ID)

	meshes, err := tessellate.Tessellate(g, newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if meshes[0].PartName != n.ID.Short() {
		t.Errorf("PartName = %q, want short ID %q", meshes[0].PartName, n.ID.Short())
	}
}

func TestKernelErrorPropagates(t *testing.T) {
	g := graph.New()
	a := makeShape("a", graph.ShapeGoldberg, 1, 0)
	g.AddNode(a)
	g.AddRoot(a.ID)

	boom := errors.New("boom")
	_, err := tessellate.Tessellate(g, &countingKernel{Kernel: newKernel(), err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapping %v", err, boom)
	}
}

func TestUnsupportedData(t *testing.T) {
	g := graph.New()
	n := &graph.Node{ID: graph.NewNodeID("odd"), Kind: graph.NodePrimitive, Data: graph.GroupData{}}
	g.AddNode(n)
	g.AddRoot(n.ID)

	if _, err := tessellate.Tessellate(g, newKernel()); err == nil {
		t.Fatal("expected error for a primitive without shape data")
	}
}

func TestEmptyGraph(t *testing.T) {
	meshes, err := tessellate.Tessellate(graph.New(), newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected 0 meshes, got %d", len(meshes))
	}

	meshes, err = tessellate.Tessellate(nil, newKernel())
	if err != nil || meshes != nil {
		t.Errorf("Tessellate(nil) = %v, %v; want nil, nil", meshes, err)
	}
}
