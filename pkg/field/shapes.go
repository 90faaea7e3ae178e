package field

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Circle returns the field of a circle of the given radius centred on the
// origin, with its exact gradient.
func Circle(radius float64) (Field2, Normal2) {
	f := func(p v2.Vec) float64 {
		return radius - p.Length()
	}
	n := func(p v2.Vec) v2.Vec {
		return p.Normalize().Neg()
	}
	return f, n
}

// Square returns the field of an axis-aligned square of the given
// half-width centred on the origin. The gradient is axis-aligned, which
// makes the shape's sharp corners visible to the solver.
func Square(radius float64) (Field2, Normal2) {
	f := func(p v2.Vec) float64 {
		return radius - math.Max(math.Abs(p.X), math.Abs(p.Y))
	}
	n := func(p v2.Vec) v2.Vec {
		if math.Abs(p.X) > math.Abs(p.Y) {
			return v2.Vec{X: -math.Copysign(1, p.X)}
		}
		return v2.Vec{Y: -math.Copysign(1, p.Y)}
	}
	return f, n
}

// Intersect2 returns the field of two solid wedges meeting at (0.5, 0.3).
// The boundary is a pair of diagonal lines |x-0.5| = |y-0.3|, so its sharp
// features are not axis-aligned. The gradient is derived by central
// differences.
func Intersect2() (Field2, Normal2) {
	f := func(p v2.Vec) float64 {
		x := math.Abs(p.X - 0.5)
		y := p.Y - 0.3
		return math.Min(x-y, x+y)
	}
	return f, NormalFromField2(f, 0.01)
}

// Intersect3 extrudes the Intersect2 wedges along the z axis.
func Intersect3() (Field3, Normal3) {
	f := func(p v3.Vec) float64 {
		x := math.Abs(p.X - 0.5)
		y := p.Y - 0.3
		return math.Min(x-y, x+y)
	}
	return f, NormalFromField3(f, 0.01)
}

// Sphere returns the field of a sphere of the given radius centred on the
// origin, with its exact gradient.
func Sphere(radius float64) (Field3, Normal3) {
	f := func(p v3.Vec) float64 {
		return radius - p.Length()
	}
	n := func(p v3.Vec) v3.Vec {
		return p.Normalize().Neg()
	}
	return f, n
}

// Cube returns the field of an axis-aligned cube of the given half-width
// centred on the origin, with its exact axis-aligned gradient.
func Cube(radius float64) (Field3, Normal3) {
	f := func(p v3.Vec) float64 {
		return radius - math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
	}
	n := func(p v3.Vec) v3.Vec {
		ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
		switch {
		case ax >= ay && ax >= az:
			return v3.Vec{X: -math.Copysign(1, p.X)}
		case ay >= az:
			return v3.Vec{Y: -math.Copysign(1, p.Y)}
		default:
			return v3.Vec{Z: -math.Copysign(1, p.Z)}
		}
	}
	return f, n
}
