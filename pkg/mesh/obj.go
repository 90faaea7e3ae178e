package mesh

import (
	"fmt"
	"io"
)

// WriteOBJ writes the mesh in Wavefront OBJ format. OBJ face indices are
// 1-based.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("mesh: writing vertex: %w", err)
		}
	}
	for _, q := range m.Quads {
		if _, err := fmt.Fprintf(w, "f %d %d %d %d\n", q[0]+1, q[1]+1, q[2]+1, q[3]+1); err != nil {
			return fmt.Errorf("mesh: writing face: %w", err)
		}
	}
	return nil
}
