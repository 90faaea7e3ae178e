// Package mesh defines the geometry produced by contour extraction:
// line segments in 2D and indexed quadrilateral meshes in 3D.
package mesh

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Segment is one 2D contour segment between two cell vertices. Segments are
// oriented so the solid region lies on a consistent side.
type Segment struct {
	A, B v2.Vec
}

// Swap returns the segment with its endpoints reversed when swap is true,
// unchanged otherwise.
func (s Segment) Swap(swap bool) Segment {
	if swap {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// Quad is one mesh face: four vertex indices, consistently wound.
type Quad [4]int

// Swap returns the quad with its winding reversed when swap is true,
// unchanged otherwise.
func (q Quad) Swap(swap bool) Quad {
	if swap {
		return Quad{q[3], q[2], q[1], q[0]}
	}
	return q
}

// Mesh is an indexed quadrilateral mesh. Indices into Vertices are 0-based.
// Faces reference only vertices that exist; degenerate faces are not
// filtered.
type Mesh struct {
	Vertices []v3.Vec
	Quads    []Quad
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// QuadCount returns the number of faces.
func (m *Mesh) QuadCount() int {
	return len(m.Quads)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangles splits each quad into two triangles, preserving winding. The
// result uses the sdfx triangle type so it can feed any of its mesh outputs.
func (m *Mesh) Triangles() []sdf.Triangle3 {
	tris := make([]sdf.Triangle3, 0, 2*len(m.Quads))
	for _, q := range m.Quads {
		a, b, c, d := m.Vertices[q[0]], m.Vertices[q[1]], m.Vertices[q[2]], m.Vertices[q[3]]
		tris = append(tris,
			sdf.Triangle3{a, b, c},
			sdf.Triangle3{a, c, d},
		)
	}
	return tris
}
