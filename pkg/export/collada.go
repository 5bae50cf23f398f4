package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/goldberg/pkg/kernel"
)

const (
	colladaNamespace = "http://www.collada.org/2005/11/COLLADASchema"
	colladaVersion   = "1.4.1"
	colladaScene     = "scene"
)

type colladaDocument struct {
	XMLName      xml.Name             `xml:"COLLADA"`
	Xmlns        string               `xml:"xmlns,attr"`
	Version      string               `xml:"version,attr"`
	Geometries   []colladaGeometry    `xml:"library_geometries>geometry"`
	VisualScenes []colladaVisualScene `xml:"library_visual_scenes>visual_scene"`
	Scene        colladaInstance      `xml:"scene>instance_visual_scene"`
}

type colladaGeometry struct {
	ID   string      `xml:"id,attr"`
	Name string      `xml:"name,attr"`
	Mesh colladaMesh `xml:"mesh"`
}

type colladaMesh struct {
	Sources   []colladaSource  `xml:"source"`
	Vertices  colladaVertices  `xml:"vertices"`
	Triangles colladaTriangles `xml:"triangles"`
}

type colladaSource struct {
	ID         string            `xml:"id,attr"`
	FloatArray colladaFloatArray `xml:"float_array"`
	Accessor   colladaAccessor   `xml:"technique_common>accessor"`
}

type colladaFloatArray struct {
	ID    string `xml:"id,attr"`
	Count int    `xml:"count,attr"`
	Data  string `xml:",chardata"`
}

type colladaAccessor struct {
	Source string         `xml:"source,attr"`
	Count  int            `xml:"count,attr"`
	Stride int            `xml:"stride,attr"`
	Params []colladaParam `xml:"param"`
}

type colladaParam struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type colladaVertices struct {
	ID     string         `xml:"id,attr"`
	Inputs []colladaInput `xml:"input"`
}

type colladaInput struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   *int   `xml:"offset,attr,omitempty"`
}

type colladaTriangles struct {
	Count  int            `xml:"count,attr"`
	Inputs []colladaInput `xml:"input"`
	P      string         `xml:"p"`
}

type colladaVisualScene struct {
	ID    string        `xml:"id,attr"`
	Name  string        `xml:"name,attr"`
	Nodes []colladaNode `xml:"node"`
}

type colladaNode struct {
	Type     string          `xml:"type,attr"`
	ID       string          `xml:"id,attr"`
	Name     string          `xml:"name,attr"`
	Geometry colladaInstance `xml:"instance_geometry"`
}

type colladaInstance struct {
	URL  string `xml:"url,attr"`
	Name string `xml:"name,attr,omitempty"`
}

// WriteCollada writes m as a COLLADA 1.4.1 document. id names the geometry
// and its scene node. The colors source holds one color per triangle drawn
// from colors, or White when colors is nil.
func WriteCollada(w io.Writer, m *kernel.Mesh, id string, colors ColorSource) error {
	if m == nil {
		return checkMesh(m)
	}
	named := *m
	named.PartName = id
	return writeCollada(w, []Part{{Mesh: &named, Color: White}}, colors)
}

// writeCollada writes one geometry per part, named by the part.
func writeCollada(w io.Writer, parts []Part, colors ColorSource) error {
	if len(parts) == 0 {
		return ErrNoParts
	}

	doc := colladaDocument{
		Xmlns:        colladaNamespace,
		Version:      colladaVersion,
		VisualScenes: []colladaVisualScene{{ID: colladaScene, Name: colladaScene}},
		Scene:        colladaInstance{URL: "#" + colladaScene},
	}
	for i, p := range parts {
		if err := checkMesh(p.Mesh); err != nil {
			return err
		}
		id := p.Mesh.PartName
		if id == "" {
			id = "part" + strconv.Itoa(i)
		}
		doc.Geometries = append(doc.Geometries, colladaGeometryFor(p, id, colors))
		doc.VisualScenes[0].Nodes = append(doc.VisualScenes[0].Nodes, colladaNode{
			Type:     "NODE",
			ID:       id,
			Name:     id,
			Geometry: colladaInstance{URL: "#" + id + "-mesh", Name: id},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: collada: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: collada: %w", err)
	}
	return nil
}

func colladaGeometryFor(p Part, id string, colors ColorSource) colladaGeometry {
	m := p.Mesh
	triColors := make([]float32, 0, 3*m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		c := next(colors, p.Color)
		triColors = append(triColors, c[:]...)
	}

	vertsID := id + "-mesh-vertices"
	zero := 0
	return colladaGeometry{
		ID:   id + "-mesh",
		Name: id,
		Mesh: colladaMesh{
			Sources: []colladaSource{
				colladaFloatSource(id+"-mesh-positions", m.Vertices, "X", "Y", "Z"),
				colladaFloatSource(id+"-mesh-normals", m.Normals, "X", "Y", "Z"),
				colladaFloatSource(id+"-mesh-colors", triColors, "R", "G", "B"),
			},
			Vertices: colladaVertices{
				ID: vertsID,
				Inputs: []colladaInput{
					{Semantic: "POSITION", Source: "#" + id + "-mesh-positions"},
					{Semantic: "NORMAL", Source: "#" + id + "-mesh-normals"},
				},
			},
			Triangles: colladaTriangles{
				Count:  m.TriangleCount(),
				Inputs: []colladaInput{{Semantic: "VERTEX", Source: "#" + vertsID, Offset: &zero}},
				P:      joinUints(m.Indices),
			},
		},
	}
}

func colladaFloatSource(id string, data []float32, params ...string) colladaSource {
	src := colladaSource{
		ID: id,
		FloatArray: colladaFloatArray{
			ID:    id + "-array",
			Count: len(data),
			Data:  joinFloats(data),
		},
		Accessor: colladaAccessor{
			Source: "#" + id + "-array",
			Count:  len(data) / len(params),
			Stride: len(params),
		},
	}
	for _, name := range params {
		src.Accessor.Params = append(src.Accessor.Params, colladaParam{Name: name, Type: "float"})
	}
	return src
}

func joinFloats(data []float32) string {
	var b strings.Builder
	for i, f := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	return b.String()
}

func joinUints(data []uint32) string {
	var b strings.Builder
	for i, u := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(u), 10))
	}
	return b.String()
}
