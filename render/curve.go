package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/spectrum"
)

// Curve is a spectrum sampled on a frequency grid.
type Curve struct {
	Freqs  []float64
	Values []complex128
}

// Grid returns n evenly spaced frequencies from lo to hi inclusive.
// n <= 0 yields nil and n == 1 yields just lo.
func Grid(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Polyline samples s at every grid frequency. The grid is copied, so the
// returned curve does not alias the caller's slice.
func Polyline(s spectrum.Spectrum, grid []float64) Curve {
	if len(grid) == 0 {
		return Curve{}
	}
	freqs := make([]float64, len(grid))
	copy(freqs, grid)
	return Curve{Freqs: freqs, Values: s.Sample(grid)}
}
