package export

import (
	"bytes"
	"encoding/xml"
	"math/rand"
	"strings"
	"testing"
)

func TestWriteCollada(t *testing.T) {
	m := goldbergMesh(t, 1, 0)
	var buf bytes.Buffer
	if err := WriteCollada(&buf, m, "Chapin", rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("WriteCollada: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Error("missing XML header")
	}

	var doc colladaDocument
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Version != colladaVersion {
		t.Errorf("version = %q", doc.Version)
	}
	if len(doc.Geometries) != 1 {
		t.Fatalf("geometries = %d, want 1", len(doc.Geometries))
	}

	g := doc.Geometries[0]
	if g.ID != "Chapin-mesh" || g.Name != "Chapin" {
		t.Errorf("geometry id/name = %q/%q", g.ID, g.Name)
	}
	if m.PartName != "ball" {
		t.Error("WriteCollada renamed the caller's mesh")
	}

	sources := map[string]colladaSource{}
	for _, s := range g.Mesh.Sources {
		sources[s.ID] = s
	}
	tests := []struct {
		id    string
		count int
	}{
		{"Chapin-mesh-positions", 3 * m.VertexCount()},
		{"Chapin-mesh-normals", 3 * m.VertexCount()},
		{"Chapin-mesh-colors", 3 * m.TriangleCount()},
	}
	for _, tt := range tests {
		s, ok := sources[tt.id]
		if !ok {
			t.Errorf("source %q missing", tt.id)
			continue
		}
		if s.FloatArray.Count != tt.count {
			t.Errorf("%s count = %d, want %d", tt.id, s.FloatArray.Count, tt.count)
		}
		if got := len(strings.Fields(s.FloatArray.Data)); got != tt.count {
			t.Errorf("%s has %d values, want %d", tt.id, got, tt.count)
		}
		if s.Accessor.Stride != 3 || s.Accessor.Count != tt.count/3 {
			t.Errorf("%s accessor = %+v", tt.id, s.Accessor)
		}
	}

	tri := g.Mesh.Triangles
	if tri.Count != m.TriangleCount() {
		t.Errorf("triangles count = %d, want %d", tri.Count, m.TriangleCount())
	}
	if got := len(strings.Fields(tri.P)); got != len(m.Indices) {
		t.Errorf("<p> has %d indices, want %d", got, len(m.Indices))
	}

	if doc.Scene.URL != "#"+colladaScene {
		t.Errorf("scene url = %q", doc.Scene.URL)
	}
	if len(doc.VisualScenes) != 1 || doc.VisualScenes[0].ID != colladaScene {
		t.Fatalf("visual scenes = %+v", doc.VisualScenes)
	}
	if got := doc.VisualScenes[0].Nodes[0].Geometry.URL; got != "#Chapin-mesh" {
		t.Errorf("instance_geometry url = %q", got)
	}
}

func TestWriteColladaAnonymousParts(t *testing.T) {
	a, b := triangleMesh(), triangleMesh()
	a.PartName, b.PartName = "", ""
	var buf bytes.Buffer
	if err := writeCollada(&buf, []Part{{Mesh: a}, {Mesh: b}}, nil); err != nil {
		t.Fatalf("writeCollada: %v", err)
	}
	var doc colladaDocument
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Geometries) != 2 || doc.Geometries[0].Name != "part0" || doc.Geometries[1].Name != "part1" {
		t.Errorf("geometries = %+v", doc.Geometries)
	}
}

func TestWriteColladaNilMesh(t *testing.T) {
	if err := WriteCollada(&bytes.Buffer{}, nil, "x", nil); err == nil {
		t.Error("WriteCollada(nil) = nil, want error")
	}
}
