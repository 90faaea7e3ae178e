package dc

import (
	"errors"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"one cell", Range{0, 1}, false},
		{"negative span", Range{-3, 3}, false},
		{"empty", Range{2, 2}, true},
		{"inverted", Range{3, -3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("Validate() = %v, want ErrInvalidRange", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestRangeCounts(t *testing.T) {
	r := Range{-3, 3}
	if got := r.Cells(); got != 6 {
		t.Errorf("Cells() = %d, want 6", got)
	}
	if got := r.Samples(); got != 7 {
		t.Errorf("Samples() = %d, want 7", got)
	}
}

// halfPlane is positive for x > 0 and exactly zero on the y axis.
func halfPlane(p v2.Vec) float64 {
	return p.X
}

func TestGrid2ZeroCountsAsOutside(t *testing.T) {
	g := newGrid2(halfPlane, Range{-2, 2}, Range{0, 1})

	// Local index 2 is the lattice line x == 0.
	if g.inside(2, 0) {
		t.Error("sample of exactly zero counted as inside")
	}
	if g.signChanged(1, 0, 2, 0) {
		t.Error("edge between two outside samples counted as active")
	}
	if !g.signChanged(2, 0, 3, 0) {
		t.Error("edge from zero sample to positive sample not active")
	}
}

func TestBisect2LinearField(t *testing.T) {
	f := func(p v2.Vec) float64 { return p.X - 0.25 }
	got := bisect2(f, v2.Vec{X: 0}, v2.Vec{X: 1}, false, 32)
	if diff := got.X - 0.25; diff > 1e-8 || diff < -1e-8 {
		t.Errorf("bisect2 crossing at x = %v, want 0.25", got.X)
	}
}

func TestFindCrossings2OnePerActiveEdge(t *testing.T) {
	f := func(p v2.Vec) float64 { return 1 - p.Length() }
	g := newGrid2(f, Range{-2, 2}, Range{-2, 2})

	// Count active edges directly from the cached signs.
	want := 0
	for ix := 0; ix < g.nx; ix++ {
		for iy := 0; iy < g.ny; iy++ {
			if ix+1 < g.nx && g.signChanged(ix, iy, ix+1, iy) {
				want++
			}
			if iy+1 < g.ny && g.signChanged(ix, iy, ix, iy+1) {
				want++
			}
		}
	}
	if want == 0 {
		t.Fatal("test field produced no active edges")
	}

	crossings := findCrossings2(g, f, func(p v2.Vec) v2.Vec { return p.Normalize().Neg() }, DefaultOptions())
	if len(crossings) != want {
		t.Errorf("findCrossings2 cached %d crossings, want %d", len(crossings), want)
	}
}
