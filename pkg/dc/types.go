package dc

import (
	"fmt"

	"github.com/inniyah/mc-dc/pkg/qef"
)

// Range is an inclusive span of integer lattice coordinates along one axis.
// Cells are unit-sized: the cell at coordinate c spans [c, c+1], so a range
// contributes cells for c in [Min, Max).
type Range struct {
	Min, Max int
}

// Validate returns ErrInvalidRange unless the range spans at least one cell.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Cells returns the number of unit cells in the range.
func (r Range) Cells() int {
	return r.Max - r.Min
}

// Samples returns the number of lattice points in the range, bounds
// inclusive.
func (r Range) Samples() int {
	return r.Max - r.Min + 1
}

// Options tune the contouring pipeline. Start from DefaultOptions; the zero
// value disables clamping and performs no bisection refinement.
type Options struct {
	// BiasStrength weights the pull of each cell vertex toward the cell's
	// mass point when the least-squares system is ambiguous.
	BiasStrength float64
	// ClampToCell forces each placed vertex inside its unit cell. An
	// unconstrained least-squares solution can land outside the cell for
	// ill-conditioned inputs.
	ClampToCell bool
	// BisectIterations is the number of bisection steps used to locate an
	// edge crossing. The default of 32 resolves the crossing to about
	// 2.3e-10 of an edge length.
	BisectIterations int
}

// DefaultOptions returns the standard pipeline tuning.
func DefaultOptions() Options {
	return Options{
		BiasStrength:     1e-3,
		ClampToCell:      true,
		BisectIterations: 32,
	}
}

func (o Options) qefParams() qef.Params {
	return qef.Params{Bias: o.BiasStrength, Clamp: o.ClampToCell}
}
