package dc

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/inniyah/mc-dc/pkg/field"
	"github.com/inniyah/mc-dc/pkg/mesh"
	"github.com/inniyah/mc-dc/pkg/qef"
)

// grid3 caches one field sample per lattice point of a 3D range.
type grid3 struct {
	xr, yr, zr Range
	nx, ny, nz int // lattice points per axis
	vals       []float64
}

func newGrid3(f field.Field3, xr, yr, zr Range) *grid3 {
	g := &grid3{
		xr: xr, yr: yr, zr: zr,
		nx: xr.Samples(), ny: yr.Samples(), nz: zr.Samples(),
	}
	g.vals = make([]float64, g.nx*g.ny*g.nz)
	for ix := 0; ix < g.nx; ix++ {
		for iy := 0; iy < g.ny; iy++ {
			for iz := 0; iz < g.nz; iz++ {
				g.vals[(ix*g.ny+iy)*g.nz+iz] = f(g.point(ix, iy, iz))
			}
		}
	}
	return g
}

// point returns the world position of a lattice point given by local
// indices.
func (g *grid3) point(ix, iy, iz int) v3.Vec {
	return v3.Vec{
		X: float64(g.xr.Min + ix),
		Y: float64(g.yr.Min + iy),
		Z: float64(g.zr.Min + iz),
	}
}

func (g *grid3) at(ix, iy, iz int) float64 {
	return g.vals[(ix*g.ny+iy)*g.nz+iz]
}

// inside applies the sign policy: strictly positive samples are inside,
// zero counts as outside.
func (g *grid3) inside(ix, iy, iz int) bool {
	return g.at(ix, iy, iz) > 0
}

func (g *grid3) signChanged(ax, ay, az, bx, by, bz int) bool {
	return g.inside(ax, ay, az) != g.inside(bx, by, bz)
}

// edgeKey3 identifies a lattice edge by the local indices of its lower
// endpoint and its direction.
type edgeKey3 struct {
	ix, iy, iz int
	axis       int
}

// crossing3 is the zero crossing found on an active edge, with the field
// gradient sampled there.
type crossing3 struct {
	pos    v3.Vec
	normal v3.Vec
}

func bisect3(f field.Field3, a, b v3.Vec, aInside bool, iters int) v3.Vec {
	lo, hi := a, b
	for i := 0; i < iters; i++ {
		mid := lo.Add(hi).MulScalar(0.5)
		if (f(mid) > 0) == aInside {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo.Add(hi).MulScalar(0.5)
}

// findCrossings3 locates the crossing of every active edge exactly once.
// All four cells around an edge read the same cached crossing, so there is
// no bisection noise between neighbours.
func findCrossings3(g *grid3, f field.Field3, normal field.Normal3, opts Options) map[edgeKey3]crossing3 {
	crossings := make(map[edgeKey3]crossing3)
	locate := func(ix, iy, iz, axis, jx, jy, jz int) {
		p := bisect3(f, g.point(ix, iy, iz), g.point(jx, jy, jz), g.inside(ix, iy, iz), opts.BisectIterations)
		crossings[edgeKey3{ix, iy, iz, axis}] = crossing3{pos: p, normal: normal(p)}
	}
	for ix := 0; ix < g.nx; ix++ {
		for iy := 0; iy < g.ny; iy++ {
			for iz := 0; iz < g.nz; iz++ {
				if ix+1 < g.nx && g.signChanged(ix, iy, iz, ix+1, iy, iz) {
					locate(ix, iy, iz, axisX, ix+1, iy, iz)
				}
				if iy+1 < g.ny && g.signChanged(ix, iy, iz, ix, iy+1, iz) {
					locate(ix, iy, iz, axisY, ix, iy+1, iz)
				}
				if iz+1 < g.nz && g.signChanged(ix, iy, iz, ix, iy, iz+1) {
					locate(ix, iy, iz, axisZ, ix, iy, iz+1)
				}
			}
		}
	}
	return crossings
}

// cellEdges3 lists the 12 edges bounding the cell whose lower corner is at
// local lattice indices (ix, iy, iz).
func cellEdges3(ix, iy, iz int) [12]edgeKey3 {
	return [12]edgeKey3{
		{ix, iy, iz, axisX},
		{ix, iy + 1, iz, axisX},
		{ix, iy, iz + 1, axisX},
		{ix, iy + 1, iz + 1, axisX},
		{ix, iy, iz, axisY},
		{ix + 1, iy, iz, axisY},
		{ix, iy, iz + 1, axisY},
		{ix + 1, iy, iz + 1, axisY},
		{ix, iy, iz, axisZ},
		{ix + 1, iy, iz, axisZ},
		{ix, iy + 1, iz, axisZ},
		{ix + 1, iy + 1, iz, axisZ},
	}
}

// placeVertices3 runs the least-squares fit for every active cell. A cell is
// active when at least one of its twelve edges has a crossing. Placement is
// parallel across cells; the crossing cache is read-only by now and every
// cell writes only its own slot.
func placeVertices3(g *grid3, crossings map[edgeKey3]crossing3, opts Options) ([]v3.Vec, []bool) {
	cx, cy, cz := g.xr.Cells(), g.yr.Cells(), g.zr.Cells()
	verts := make([]v3.Vec, cx*cy*cz)
	active := make([]bool, cx*cy*cz)
	params := opts.qefParams()

	parallelRange(0, cx*cy*cz, func(i int) {
		ix, iy, iz := i/(cy*cz), (i/cz)%cy, i%cz
		var positions, normals []v3.Vec
		for _, k := range cellEdges3(ix, iy, iz) {
			if c, ok := crossings[k]; ok {
				positions = append(positions, c.pos)
				normals = append(normals, c.normal)
			}
		}
		if len(positions) == 0 {
			return
		}
		verts[i] = qef.Solve3(g.point(ix, iy, iz), positions, normals, params)
		active[i] = true
	})
	return verts, active
}

// stitch3 assembles the output mesh: active cells become vertices in cell
// iteration order, and every active interior edge becomes a quad over the
// four cells sharing it. Winding follows the edge's inside-to-outside sign
// so all faces are consistently oriented. Edges with fewer than four
// surrounding cells lie on the lattice boundary and are skipped.
func stitch3(g *grid3, verts []v3.Vec, active []bool) *mesh.Mesh {
	cx, cy, cz := g.xr.Cells(), g.yr.Cells(), g.zr.Cells()

	m := &mesh.Mesh{}
	index := make([]int, len(verts))
	for i, ok := range active {
		if !ok {
			index[i] = -1
			continue
		}
		index[i] = len(m.Vertices)
		m.Vertices = append(m.Vertices, verts[i])
	}
	cell := func(ix, iy, iz int) int {
		return index[(ix*cy+iy)*cz+iz]
	}

	// Edges along z, shared by four cells in the xy plane.
	for ix := 1; ix < cx; ix++ {
		for iy := 1; iy < cy; iy++ {
			for iz := 0; iz < cz; iz++ {
				if !g.signChanged(ix, iy, iz, ix, iy, iz+1) {
					continue
				}
				q := mesh.Quad{
					cell(ix-1, iy-1, iz),
					cell(ix, iy-1, iz),
					cell(ix, iy, iz),
					cell(ix-1, iy, iz),
				}
				m.Quads = append(m.Quads, q.Swap(g.inside(ix, iy, iz+1)))
			}
		}
	}
	// Edges along y, shared by four cells in the xz plane.
	for ix := 1; ix < cx; ix++ {
		for iz := 1; iz < cz; iz++ {
			for iy := 0; iy < cy; iy++ {
				if !g.signChanged(ix, iy, iz, ix, iy+1, iz) {
					continue
				}
				q := mesh.Quad{
					cell(ix-1, iy, iz-1),
					cell(ix, iy, iz-1),
					cell(ix, iy, iz),
					cell(ix-1, iy, iz),
				}
				m.Quads = append(m.Quads, q.Swap(g.inside(ix, iy, iz)))
			}
		}
	}
	// Edges along x, shared by four cells in the yz plane.
	for iy := 1; iy < cy; iy++ {
		for iz := 1; iz < cz; iz++ {
			for ix := 0; ix < cx; ix++ {
				if !g.signChanged(ix, iy, iz, ix+1, iy, iz) {
					continue
				}
				q := mesh.Quad{
					cell(ix, iy-1, iz-1),
					cell(ix, iy, iz-1),
					cell(ix, iy, iz),
					cell(ix, iy-1, iz),
				}
				m.Quads = append(m.Quads, q.Swap(g.inside(ix+1, iy, iz)))
			}
		}
	}
	return m
}

// DualContour3D extracts the zero isosurface of f over the given lattice
// ranges as an indexed quad mesh, using DefaultOptions. normal must return
// the field's gradient direction at any in-range point.
func DualContour3D(f field.Field3, normal field.Normal3, xr, yr, zr Range) (*mesh.Mesh, error) {
	return DualContour3DOpts(f, normal, xr, yr, zr, DefaultOptions())
}

// DualContour3DOpts is DualContour3D with explicit pipeline options.
func DualContour3DOpts(f field.Field3, normal field.Normal3, xr, yr, zr Range, opts Options) (*mesh.Mesh, error) {
	if err := xr.Validate(); err != nil {
		return nil, fmt.Errorf("x range: %w", err)
	}
	if err := yr.Validate(); err != nil {
		return nil, fmt.Errorf("y range: %w", err)
	}
	if err := zr.Validate(); err != nil {
		return nil, fmt.Errorf("z range: %w", err)
	}

	g := newGrid3(f, xr, yr, zr)
	crossings := findCrossings3(g, f, normal, opts)
	verts, active := placeVertices3(g, crossings, opts)
	return stitch3(g, verts, active), nil
}
