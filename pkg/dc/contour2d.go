package dc

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/inniyah/mc-dc/pkg/field"
	"github.com/inniyah/mc-dc/pkg/mesh"
	"github.com/inniyah/mc-dc/pkg/qef"
)

// Edge directions of the lattice.
const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// grid2 caches one field sample per lattice point of a 2D range, so the
// field is evaluated exactly once per point no matter how many edges and
// cells touch it.
type grid2 struct {
	xr, yr Range
	nx, ny int // lattice points per axis
	vals   []float64
}

func newGrid2(f field.Field2, xr, yr Range) *grid2 {
	g := &grid2{xr: xr, yr: yr, nx: xr.Samples(), ny: yr.Samples()}
	g.vals = make([]float64, g.nx*g.ny)
	for ix := 0; ix < g.nx; ix++ {
		for iy := 0; iy < g.ny; iy++ {
			g.vals[ix*g.ny+iy] = f(g.point(ix, iy))
		}
	}
	return g
}

// point returns the world position of a lattice point given by local
// indices.
func (g *grid2) point(ix, iy int) v2.Vec {
	return v2.Vec{X: float64(g.xr.Min + ix), Y: float64(g.yr.Min + iy)}
}

func (g *grid2) at(ix, iy int) float64 {
	return g.vals[ix*g.ny+iy]
}

// inside applies the sign policy: strictly positive samples are inside,
// zero counts as outside.
func (g *grid2) inside(ix, iy int) bool {
	return g.at(ix, iy) > 0
}

// signChanged reports whether the lattice edge between two adjacent points
// crosses the surface.
func (g *grid2) signChanged(ax, ay, bx, by int) bool {
	return g.inside(ax, ay) != g.inside(bx, by)
}

// edgeKey2 identifies a lattice edge by the local indices of its lower
// endpoint and its direction.
type edgeKey2 struct {
	ix, iy int
	axis   int
}

// crossing2 is the zero crossing found on an active edge, with the field
// gradient sampled there.
type crossing2 struct {
	pos    v2.Vec
	normal v2.Vec
}

// bisect2 locates the zero crossing of f on the segment a-b. The caller
// guarantees a sign change across the segment; aInside is the sign policy
// result at a.
func bisect2(f field.Field2, a, b v2.Vec, aInside bool, iters int) v2.Vec {
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

// findCrossings2 locates the crossing of every active edge exactly once.
// Cells share the cache, so neighbouring cells see identical crossing
// positions and normals.
func findCrossings2(g *grid2, f field.Field2, normal field.Normal2, opts Options) map[edgeKey2]crossing2 {
	crossings := make(map[edgeKey2]crossing2)
	for ix := 0; ix < g.nx; ix++ {
		for iy := 0; iy < g.ny; iy++ {
			if ix+1 < g.nx && g.signChanged(ix, iy, ix+1, iy) {
				p := bisect2(f, g.point(ix, iy), g.point(ix+1, iy), g.inside(ix, iy), opts.BisectIterations)
				crossings[edgeKey2{ix, iy, axisX}] = crossing2{pos: p, normal: normal(p)}
			}
			if iy+1 < g.ny && g.signChanged(ix, iy, ix, iy+1) {
				p := bisect2(f, g.point(ix, iy), g.point(ix, iy+1), g.inside(ix, iy), opts.BisectIterations)
				crossings[edgeKey2{ix, iy, axisY}] = crossing2{pos: p, normal: normal(p)}
			}
		}
	}
	return crossings
}

// placeVertices2 runs the least-squares fit for every active cell. A cell is
// active when at least one of its four edges has a crossing. Placement is
// parallel across cells; the crossing cache is read-only by now.
func placeVertices2(g *grid2, crossings map[edgeKey2]crossing2, opts Options) ([]v2.Vec, []bool) {
	cx, cy := g.xr.Cells(), g.yr.Cells()
	verts := make([]v2.Vec, cx*cy)
	active := make([]bool, cx*cy)
	params := opts.qefParams()

	parallelRange(0, cx*cy, func(i int) {
		ix, iy := i/cy, i%cy
		keys := [4]edgeKey2{
			{ix, iy, axisX},
			{ix, iy + 1, axisX},
			{ix, iy, axisY},
			{ix + 1, iy, axisY},
		}
		var positions, normals []v2.Vec
		for _, k := range keys {
			if c, ok := crossings[k]; ok {
				positions = append(positions, c.pos)
				normals = append(normals, c.normal)
			}
		}
		if len(positions) == 0 {
			return
		}
		verts[i] = qef.Solve2(g.point(ix, iy), positions, normals, params)
		active[i] = true
	})
	return verts, active
}

// stitch2 emits one segment per active interior edge, connecting the
// vertices of the two cells sharing the edge. Segment direction follows the
// edge's inside-to-outside sign so the solid stays on a consistent side.
// Edges on the outer lattice boundary have only one adjacent cell and are
// skipped.
func stitch2(g *grid2, verts []v2.Vec) []mesh.Segment {
	cx, cy := g.xr.Cells(), g.yr.Cells()
	cell := func(ix, iy int) v2.Vec {
		return verts[ix*cy+iy]
	}

	var segs []mesh.Segment
	// Vertical edges, shared by horizontally adjacent cells.
	for ix := 1; ix < cx; ix++ {
		for iy := 0; iy < cy; iy++ {
			if !g.signChanged(ix, iy, ix, iy+1) {
				continue
			}
			seg := mesh.Segment{A: cell(ix-1, iy), B: cell(ix, iy)}
			segs = append(segs, seg.Swap(g.inside(ix, iy)))
		}
	}
	// Horizontal edges, shared by vertically adjacent cells.
	for iy := 1; iy < cy; iy++ {
		for ix := 0; ix < cx; ix++ {
			if !g.signChanged(ix, iy, ix+1, iy) {
				continue
			}
			seg := mesh.Segment{A: cell(ix, iy-1), B: cell(ix, iy)}
			segs = append(segs, seg.Swap(g.inside(ix, iy)))
		}
	}
	return segs
}

// DualContour2D extracts the zero contour of f over the given lattice
// ranges as an unordered set of line segments, using DefaultOptions.
// normal must return the field's gradient direction at any in-range point.
func DualContour2D(f field.Field2, normal field.Normal2, xr, yr Range) ([]mesh.Segment, error) {
	return DualContour2DOpts(f, normal, xr, yr, DefaultOptions())
}

// DualContour2DOpts is DualContour2D with explicit pipeline options.
func DualContour2DOpts(f field.Field2, normal field.Normal2, xr, yr Range, opts Options) ([]mesh.Segment, error) {
	if err := xr.Validate(); err != nil {
		return nil, fmt.Errorf("x range: %w", err)
	}
	if err := yr.Validate(); err != nil {
		return nil, fmt.Errorf("y range: %w", err)
	}

	g := newGrid2(f, xr, yr)
	crossings := findCrossings2(g, f, normal, opts)
	verts, _ := placeVertices2(g, crossings, opts)
	return stitch2(g, verts), nil
}
