// Package field defines the scalar field and gradient callables consumed by
// the contouring algorithms. Fields follow the positive-inside convention:
// f(p) > 0 means p is inside the solid, and the isosurface is the zero set.
// Fields are expected to be pure and cheap to evaluate at arbitrary
// non-integer coordinates.
package field

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Field2 evaluates a 2D scalar field.
type Field2 func(p v2.Vec) float64

// Field3 evaluates a 3D scalar field.
type Field3 func(p v3.Vec) float64

// Normal2 evaluates the gradient direction of a 2D scalar field.
type Normal2 func(p v2.Vec) v2.Vec

// Normal3 evaluates the gradient direction of a 3D scalar field.
type Normal3 func(p v3.Vec) v3.Vec

// NormalFromField2 approximates the gradient of a sufficiently smooth field
// by central differences. d controls the step; smaller values are a more
// accurate approximation.
func NormalFromField2(f Field2, d float64) Normal2 {
	return func(p v2.Vec) v2.Vec {
		n := v2.Vec{
			X: (f(v2.Vec{X: p.X + d, Y: p.Y}) - f(v2.Vec{X: p.X - d, Y: p.Y})) / (2 * d),
			Y: (f(v2.Vec{X: p.X, Y: p.Y + d}) - f(v2.Vec{X: p.X, Y: p.Y - d})) / (2 * d),
		}
		return n.Normalize()
	}
}

// NormalFromField3 approximates the gradient of a sufficiently smooth field
// by central differences.
func NormalFromField3(f Field3, d float64) Normal3 {
	return func(p v3.Vec) v3.Vec {
		n := v3.Vec{
			X: (f(v3.Vec{X: p.X + d, Y: p.Y, Z: p.Z}) - f(v3.Vec{X: p.X - d, Y: p.Y, Z: p.Z})) / (2 * d),
			Y: (f(v3.Vec{X: p.X, Y: p.Y + d, Z: p.Z}) - f(v3.Vec{X: p.X, Y: p.Y - d, Z: p.Z})) / (2 * d),
			Z: (f(v3.Vec{X: p.X, Y: p.Y, Z: p.Z + d}) - f(v3.Vec{X: p.X, Y: p.Y, Z: p.Z - d})) / (2 * d),
		}
		return n.Normalize()
	}
}
