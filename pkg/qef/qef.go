// Package qef places one vertex per contouring cell by minimizing a
// quadratic error function: the sum of squared distances to a set of tangent
// planes, each given by a crossing position and the surface normal there.
//
// The minimum of Σ (nᵢ·(x − pᵢ))² satisfies the normal equations A x = b
// with A = Σ nᵢnᵢᵀ and b = Σ nᵢ(nᵢ·pᵢ). A is rank-deficient whenever the
// normals don't span the space (a flat or single-crossing cell), so the
// system is regularized toward the mass point of the crossings and falls
// back to it outright when the determinant vanishes. The solver never fails:
// it always returns exactly one point, and the sums make it independent of
// constraint order up to floating-point rounding.
package qef

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Params control regularization and clamping.
type Params struct {
	// Bias is the Tikhonov weight pulling the solution toward the mass
	// point. It must be small relative to the unit input normals so it only
	// decides ambiguous systems.
	Bias float64
	// Clamp forces the solution into the unit cell at the origin.
	Clamp bool
}

// DefaultParams returns the solver parameters used by the contouring
// pipeline unless overridden.
func DefaultParams() Params {
	return Params{Bias: 1e-3, Clamp: true}
}

// singularEps bounds the determinant below which the system counts as
// singular and the mass point is used directly.
const singularEps = 1e-12

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Solve2 returns the point minimizing the 2D quadratic error function for
// plane constraints (positions[i], normals[i]), relative to the unit cell
// whose lower corner is origin. The system is accumulated in cell-local
// coordinates to keep it well conditioned far from the world origin.
func Solve2(origin v2.Vec, positions, normals []v2.Vec, p Params) v2.Vec {
	if len(positions) == 0 {
		return origin
	}

	var a11, a12, a22, b1, b2 float64
	var mass v2.Vec
	for i, n := range normals {
		q := positions[i].Sub(origin)
		d := n.Dot(q)
		a11 += n.X * n.X
		a12 += n.X * n.Y
		a22 += n.Y * n.Y
		b1 += d * n.X
		b2 += d * n.Y
		mass = mass.Add(q)
	}
	mass = mass.DivScalar(float64(len(positions)))

	a11 += p.Bias
	a22 += p.Bias
	b1 += p.Bias * mass.X
	b2 += p.Bias * mass.Y

	det := a11*a22 - a12*a12
	var x v2.Vec
	if math.Abs(det) < singularEps {
		x = mass
	} else {
		x = v2.Vec{
			X: (a22*b1 - a12*b2) / det,
			Y: (a11*b2 - a12*b1) / det,
		}
	}

	if p.Clamp {
		x = v2.Vec{X: clamp01(x.X), Y: clamp01(x.Y)}
	}
	return x.Add(origin)
}

// Solve3 returns the point minimizing the 3D quadratic error function for
// plane constraints (positions[i], normals[i]), relative to the unit cell
// whose lower corner is origin.
func Solve3(origin v3.Vec, positions, normals []v3.Vec, p Params) v3.Vec {
	if len(positions) == 0 {
		return origin
	}

	var a11, a12, a13, a22, a23, a33 float64
	var b1, b2, b3 float64
	var mass v3.Vec
	for i, n := range normals {
		q := positions[i].Sub(origin)
		d := n.Dot(q)
		a11 += n.X * n.X
		a12 += n.X * n.Y
		a13 += n.X * n.Z
		a22 += n.Y * n.Y
		a23 += n.Y * n.Z
		a33 += n.Z * n.Z
		b1 += d * n.X
		b2 += d * n.Y
		b3 += d * n.Z
		mass = mass.Add(q)
	}
	mass = mass.DivScalar(float64(len(positions)))

	a11 += p.Bias
	a22 += p.Bias
	a33 += p.Bias
	b1 += p.Bias * mass.X
	b2 += p.Bias * mass.Y
	b3 += p.Bias * mass.Z

	// Cofactors of the symmetric system matrix.
	i11 := a22*a33 - a23*a23
	i12 := a13*a23 - a12*a33
	i13 := a12*a23 - a13*a22
	i22 := a11*a33 - a13*a13
	i23 := a12*a13 - a11*a23
	i33 := a11*a22 - a12*a12
	det := a11*i11 + a12*i12 + a13*i13

	var x v3.Vec
	if math.Abs(det) < singularEps {
		x = mass
	} else {
		x = v3.Vec{
			X: (i11*b1 + i12*b2 + i13*b3) / det,
			Y: (i12*b1 + i22*b2 + i23*b3) / det,
			Z: (i13*b1 + i23*b2 + i33*b3) / det,
		}
	}

	if p.Clamp {
		x = v3.Vec{X: clamp01(x.X), Y: clamp01(x.Y), Z: clamp01(x.Z)}
	}
	return x.Add(origin)
}
