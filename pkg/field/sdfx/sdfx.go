// Package sdfx adapts solids from the github.com/deadsy/sdfx CAD library to
// contouring fields and lattice ranges, so any SDF built with it can be
// dual contoured.
package sdfx

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/inniyah/mc-dc/pkg/dc"
	"github.com/inniyah/mc-dc/pkg/field"
)

// FromSDF3 adapts an sdfx solid to a scalar field. sdfx distance fields are
// negative inside while contouring fields are positive inside, so the sign
// is flipped.
func FromSDF3(s sdf.SDF3) field.Field3 {
	return func(p v3.Vec) float64 {
		return -s.Evaluate(p)
	}
}

// FromSDF2 adapts a 2D sdfx shape to a scalar field, flipping the sign as
// FromSDF3 does.
func FromSDF2(s sdf.SDF2) field.Field2 {
	return func(p v2.Vec) float64 {
		return -s.Evaluate(p)
	}
}

// NormalFromSDF3 derives the field gradient from the distance field by
// central differences with step d.
func NormalFromSDF3(s sdf.SDF3, d float64) field.Normal3 {
	return field.NormalFromField3(FromSDF3(s), d)
}

// NormalFromSDF2 derives the field gradient from the distance field by
// central differences with step d.
func NormalFromSDF2(s sdf.SDF2, d float64) field.Normal2 {
	return field.NormalFromField2(FromSDF2(s), d)
}

// Bounds3 returns inclusive lattice ranges covering the solid's bounding
// box, padded by one cell on each side. The padding keeps the surface away
// from the outer lattice boundary, where edges have too few surrounding
// cells to produce faces.
func Bounds3(s sdf.SDF3) (xr, yr, zr dc.Range) {
	bb := s.BoundingBox()
	xr = axisRange(bb.Min.X, bb.Max.X)
	yr = axisRange(bb.Min.Y, bb.Max.Y)
	zr = axisRange(bb.Min.Z, bb.Max.Z)
	return xr, yr, zr
}

// Bounds2 returns inclusive lattice ranges covering the shape's bounding
// box, padded by one cell on each side.
func Bounds2(s sdf.SDF2) (xr, yr dc.Range) {
	bb := s.BoundingBox()
	xr = axisRange(bb.Min.X, bb.Max.X)
	yr = axisRange(bb.Min.Y, bb.Max.Y)
	return xr, yr
}

func axisRange(min, max float64) dc.Range {
	return dc.Range{
		Min: int(math.Floor(min)) - 1,
		Max: int(math.Ceil(max)) + 1,
	}
}
