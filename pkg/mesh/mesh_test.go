package mesh

import (
	"strings"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []v3.Vec
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []v3.Vec{{X: 1, Y: 2, Z: 3}}, 1},
		{"four vertices", make([]v3.Vec, 4), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshQuadCount(t *testing.T) {
	tests := []struct {
		name  string
		quads []Quad
		want  int
	}{
		{"empty", nil, 0},
		{"one quad", []Quad{{0, 1, 2, 3}}, 1},
		{"two quads", []Quad{{0, 1, 2, 3}, {3, 2, 1, 0}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Quads: tt.quads}
			if got := m.QuadCount(); got != tt.want {
				t.Errorf("QuadCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []v3.Vec{{X: 1}}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestQuadSwap(t *testing.T) {
	q := Quad{0, 1, 2, 3}
	if got := q.Swap(false); got != q {
		t.Errorf("Swap(false) = %v, want %v", got, q)
	}
	want := Quad{3, 2, 1, 0}
	if got := q.Swap(true); got != want {
		t.Errorf("Swap(true) = %v, want %v", got, want)
	}
}

func TestSegmentSwap(t *testing.T) {
	s := Segment{A: v2.Vec{X: 1}, B: v2.Vec{Y: 1}}
	if got := s.Swap(false); got != s {
		t.Errorf("Swap(false) = %v, want %v", got, s)
	}
	want := Segment{A: s.B, B: s.A}
	if got := s.Swap(true); got != want {
		t.Errorf("Swap(true) = %v, want %v", got, want)
	}
}

func TestMeshTriangles(t *testing.T) {
	m := &Mesh{
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Quads: []Quad{{0, 1, 2, 3}},
	}
	tris := m.Triangles()
	if len(tris) != 2 {
		t.Fatalf("Triangles() returned %d triangles, want 2", len(tris))
	}
	// Both triangles share the quad's first vertex and keep its winding.
	if tris[0][0] != m.Vertices[0] || tris[1][0] != m.Vertices[0] {
		t.Error("triangle fan does not start at the quad's first vertex")
	}
	if tris[0][2] != tris[1][1] {
		t.Error("triangles do not share the quad diagonal")
	}
}

func TestWriteOBJ(t *testing.T) {
	m := &Mesh{
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0.5},
			{X: 0, Y: 1, Z: 0},
		},
		Quads: []Quad{{0, 1, 2, 3}},
	}
	var sb strings.Builder
	if err := m.WriteOBJ(&sb); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	want := "v 0 0 0\n" +
		"v 1 0 0\n" +
		"v 1 1 0.5\n" +
		"v 0 1 0\n" +
		"f 1 2 3 4\n"
	if sb.String() != want {
		t.Errorf("WriteOBJ output:\n%s\nwant:\n%s", sb.String(), want)
	}
}
