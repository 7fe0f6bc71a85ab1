package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/component"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/filter"
)

// Errors returned by spectrum constructors.
var ErrLengthMismatch = errors.New("spectrum: length mismatch")

// Mass is the point mass contributed by one impulse component.
type Mass struct {
	Freq float64
	Amp  complex128
}

// Spectrum is an immutable ordered aggregate of analytic components.
//
// The zero value is an empty spectrum. Methods never mutate the receiver.
type Spectrum struct {
	comps []component.Component
}

// New creates a spectrum from the given components. The input slice is
// copied.
func New(comps ...component.Component) Spectrum {
	if len(comps) == 0 {
		return Spectrum{}
	}
	out := make([]component.Component, len(comps))
	copy(out, comps)
	return Spectrum{comps: out}
}

// FromSamples creates a spectrum of impulses from parallel frequency and
// amplitude slices, preserving order. This is the entry point for upstream
// producers that emit (frequency, complex amplitude) pairs.
func FromSamples(freqs []float64, amps []complex128) (Spectrum, error) {
	if len(freqs) != len(amps) {
		return Spectrum{}, fmt.Errorf("%w: %d frequencies, %d amplitudes",
			ErrLengthMismatch, len(freqs), len(amps))
	}
	if len(freqs) == 0 {
		return Spectrum{}, nil
	}

	comps := make([]component.Component, len(freqs))
	for i := range freqs {
		d, err := component.NewDelta(freqs[i], amps[i])
		if err != nil {
			return Spectrum{}, fmt.Errorf("sample %d: %w", i, err)
		}
		comps[i] = d
	}
	return Spectrum{comps: comps}, nil
}

// Len returns the number of components.
func (s Spectrum) Len() int { return len(s.comps) }

// At returns the component at index i.
func (s Spectrum) At(i int) component.Component { return s.comps[i] }

// Components returns a copy of the component list.
func (s Spectrum) Components() []component.Component {
	if len(s.comps) == 0 {
		return nil
	}
	out := make([]component.Component, len(s.comps))
	copy(out, s.comps)
	return out
}

// Evaluate returns the pointwise spectral density at frequency f: the sum of
// all continuous component values. Impulses contribute nothing pointwise;
// their masses are reported by Masses.
func (s Spectrum) Evaluate(f float64) complex128 {
	var sum complex128
	for _, c := range s.comps {
		sum += c.Evaluate(f)
	}
	return sum
}

// Sample evaluates the spectrum at every frequency in freqs.
func (s Spectrum) Sample(freqs []float64) []complex128 {
	if len(freqs) == 0 {
		return nil
	}
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = s.Evaluate(f)
	}
	return out
}

// Masses returns the impulse point masses in component order.
func (s Spectrum) Masses() []Mass {
	var out []Mass
	for _, c := range s.comps {
		if c.IsImpulse() {
			out = append(out, Mass{Freq: c.Center(), Amp: c.Amplitude()})
		}
	}
	return out
}

// Support returns the closed interval covering the supports of all
// components. ok is false for an empty spectrum.
func (s Spectrum) Support() (lo, hi float64, ok bool) {
	if len(s.comps) == 0 {
		return 0, 0, false
	}
	lo, hi = s.comps[0].Support()
	for _, c := range s.comps[1:] {
		clo, chi := c.Support()
		lo = math.Min(lo, clo)
		hi = math.Max(hi, chi)
	}
	return lo, hi, true
}

// PeakAmplitude returns the largest component amplitude magnitude. It treats
// impulse masses and continuous peak values alike, which makes it a cheap
// vertical-extent hint for display code.
func (s Spectrum) PeakAmplitude() float64 {
	peak := 0.0
	for _, c := range s.comps {
		if m := cmplx.Abs(c.Amplitude()); m > peak {
			peak = m
		}
	}
	return peak
}

// Add returns the superposition of both spectra: the component lists
// concatenated in order. Nothing is merged.
func (s Spectrum) Add(other Spectrum) Spectrum {
	if other.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return other
	}
	out := make([]component.Component, 0, len(s.comps)+len(other.comps))
	out = append(out, s.comps...)
	out = append(out, other.comps...)
	return Spectrum{comps: out}
}

// Append returns a spectrum with the given components added at the end.
func (s Spectrum) Append(comps ...component.Component) Spectrum {
	if len(comps) == 0 {
		return s
	}
	out := make([]component.Component, 0, len(s.comps)+len(comps))
	out = append(out, s.comps...)
	out = append(out, comps...)
	return Spectrum{comps: out}
}

// Scale returns a spectrum with every amplitude multiplied by k.
func (s Spectrum) Scale(k complex128) Spectrum {
	out := make([]component.Component, len(s.comps))
	for i, c := range s.comps {
		out[i] = c.Scale(k)
	}
	return Spectrum{comps: out}
}

// Shift returns a spectrum moved by df along the frequency axis.
func (s Spectrum) Shift(df float64) Spectrum {
	out := make([]component.Component, len(s.comps))
	for i, c := range s.comps {
		out[i] = c.Shift(df)
	}
	return Spectrum{comps: out}
}

// Mirror returns the spectrum reflected about 0 Hz.
func (s Spectrum) Mirror() Spectrum {
	out := make([]component.Component, len(s.comps))
	for i, c := range s.comps {
		out[i] = c.Mirror()
	}
	return Spectrum{comps: out}
}

// Mix heterodynes the spectrum with an oscillator at fOsc: every component is
// replaced by a pair shifted up and down by fOsc, each scaled by gain. The
// up-shifted copy precedes the down-shifted one. An ideal multiplier halves
// the amplitude per side, so gain is typically 0.5.
func (s Spectrum) Mix(fOsc, gain float64) Spectrum {
	if len(s.comps) == 0 {
		return s
	}
	k := complex(gain, 0)
	out := make([]component.Component, 0, 2*len(s.comps))
	for _, c := range s.comps {
		out = append(out, c.Shift(fOsc).Scale(k), c.Shift(-fOsc).Scale(k))
	}
	return Spectrum{comps: out}
}

// ApplyFilter clips every component against the filter mask, dropping what
// falls entirely in the stop region. Band-stop remainder pairs are flattened
// in place, lower remainder first, so component order stays stable.
func (s Spectrum) ApplyFilter(f filter.Filter) Spectrum {
	out := make([]component.Component, 0, len(s.comps))
	for _, c := range s.comps {
		out = append(out, f.Clip(c)...)
	}
	if len(out) == 0 {
		return Spectrum{}
	}
	return Spectrum{comps: out}
}

// ApplyFilters applies the filters in sequence.
func (s Spectrum) ApplyFilters(filters ...filter.Filter) Spectrum {
	out := s
	for _, f := range filters {
		out = out.ApplyFilter(f)
	}
	return out
}

// Prune returns a spectrum without components that contribute nothing:
// zero-amplitude components and zero-width triangle shapes. Point blocks and
// nonzero impulses are kept, as both remain observable. Pruning never changes
// what Evaluate returns; zero masses disappear from Masses.
func (s Spectrum) Prune() Spectrum {
	out := make([]component.Component, 0, len(s.comps))
	for _, c := range s.comps {
		if c.Amplitude() == 0 {
			continue
		}
		if c.HalfWidth() == 0 {
			switch c.Shape() {
			case component.ShapeTriangle, component.ShapeLeftTriangle, component.ShapeRightTriangle:
				continue
			}
		}
		out = append(out, c)
	}
	if len(out) == len(s.comps) {
		return s
	}
	if len(out) == 0 {
		return Spectrum{}
	}
	return Spectrum{comps: out}
}

// String returns a compact debug representation.
func (s Spectrum) String() string {
	parts := make([]string, len(s.comps))
	for i, c := range s.comps {
		parts[i] = c.String()
	}
	return "spectrum[" + strings.Join(parts, ", ") + "]"
}
