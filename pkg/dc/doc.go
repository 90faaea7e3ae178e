// Package dc extracts contours from scalar fields over a regular unit grid
// using Dual Contouring.
//
// Unlike marching-cubes style edge interpolation, dual contouring places one
// optimized vertex inside every grid cell the surface passes through, then
// connects the vertices of the cells around each sign-changing lattice edge:
// a line segment between 2 cells in 2D, a quadrilateral between 4 cells in
// 3D. The vertex is the least-squares best fit to the tangent planes sampled
// where the field crosses the cell's edges, which lets the output hug curved
// surfaces and recover sharp axis-aligned features.
//
// The pipeline per call: sample field signs at every lattice point, locate
// the zero crossing of every active edge once by bisection, place one vertex
// per active cell with the qef solver, then stitch segments or quads per
// active interior edge. Boundary edges with fewer than the full set of
// surrounding cells produce no geometry. A lattice sample of exactly zero
// counts as outside.
package dc
