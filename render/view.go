package render

import (
	"math"
	"math/cmplx"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/filter"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/spectrum"
)

// Mark locates one spectral impulse for arrow-style rendering.
type Mark struct {
	Freq      float64
	Amp       complex128
	Magnitude float64
}

// Markers returns one Mark per impulse in s, in component order.
func Markers(s spectrum.Spectrum) []Mark {
	masses := s.Masses()
	if len(masses) == 0 {
		return nil
	}
	out := make([]Mark, len(masses))
	for i, m := range masses {
		out[i] = Mark{Freq: m.Freq, Amp: m.Amp, Magnitude: cmplx.Abs(m.Amp)}
	}
	return out
}

// Extent is the axis-fitting summary of a spectrum: the support edges and
// the largest component magnitude.
type Extent struct {
	FMin float64
	FMax float64
	Peak float64
}

// PaddedX widens the frequency extent by frac of the larger absolute edge.
// When that margin degenerates to zero (everything at DC) it widens by 1 so
// the view is never empty.
func (e Extent) PaddedX(frac float64) (lo, hi float64) {
	pad := frac * math.Max(math.Abs(e.FMin), math.Abs(e.FMax))
	if pad == 0 && frac > 0 {
		pad = 1
	}
	return e.FMin - pad, e.FMax + pad
}

// PaddedY returns the amplitude-axis top: Peak scaled by headroom.
func (e Extent) PaddedY(headroom float64) float64 {
	return e.Peak * headroom
}

// Bounds computes the extent of s. ok is false for an empty spectrum.
func Bounds(s spectrum.Spectrum) (Extent, bool) {
	lo, hi, ok := s.Support()
	if !ok {
		return Extent{}, false
	}
	return Extent{FMin: lo, FMax: hi, Peak: s.PeakAmplitude()}, true
}

// Span is one shaded frequency stripe: a passband clipped to the view.
type Span struct {
	Low  float64
	High float64
}

// Shade clips each passband to the view [lo, hi] and returns the visible
// stripes in input order. Bands outside the view are skipped.
func Shade(bands []filter.Band, lo, hi float64) []Span {
	var out []Span
	for _, b := range bands {
		a, z, ok := core.IntersectInterval(lo, hi, b.Low, b.High)
		if !ok {
			continue
		}
		out = append(out, Span{Low: a, High: z})
	}
	return out
}
