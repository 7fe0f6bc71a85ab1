package filter

import (
	"math"
	"sort"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

// Band is a closed frequency interval. Infinite bounds describe half-open
// axes.
type Band struct {
	Low  float64
	High float64
}

// Contains reports whether f lies in the band, edges included.
func (b Band) Contains(f float64) bool {
	return core.IntervalContains(b.Low, b.High, f)
}

// Passbands returns the pass region as ordered disjoint closed bands.
// Band-stop filters report the two complement bands around the rejected
// range.
func (f Filter) Passbands() []Band {
	switch f.typ {
	case TypeLowPass:
		return []Band{{Low: math.Inf(-1), High: f.high}}
	case TypeHighPass:
		return []Band{{Low: f.low, High: math.Inf(1)}}
	case TypeBandPass:
		return []Band{{Low: f.low, High: f.high}}
	case TypeBandStop:
		return []Band{
			{Low: math.Inf(-1), High: f.low},
			{Low: f.high, High: math.Inf(1)},
		}
	default:
		return nil
	}
}

// MergeBands sorts bands and coalesces overlapping or touching ones.
// Bands with NaN edges or inverted bounds are dropped.
func MergeBands(bands []Band) []Band {
	kept := make([]Band, 0, len(bands))
	for _, b := range bands {
		if math.IsNaN(b.Low) || math.IsNaN(b.High) || b.Low > b.High {
			continue
		}
		kept = append(kept, b)
	}
	if len(kept) <= 1 {
		return kept
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Low < kept[j].Low })

	merged := kept[:1]
	for _, b := range kept[1:] {
		last := &merged[len(merged)-1]
		if b.Low <= last.High {
			if b.High > last.High {
				last.High = b.High
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// IntersectBands intersects two ordered disjoint band lists, as produced by
// Passbands or MergeBands.
func IntersectBands(a, b []Band) []Band {
	var out []Band
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo, hi, ok := core.IntersectInterval(a[i].Low, a[i].High, b[j].Low, b[j].High)
		if ok {
			out = append(out, Band{Low: lo, High: hi})
		}
		if a[i].High < b[j].High {
			i++
		} else {
			j++
		}
	}
	return out
}

// CascadePassbands returns the effective pass region of filters applied in
// sequence: the intersection of every filter's passbands. With no filters the
// whole axis passes.
func CascadePassbands(filters ...Filter) []Band {
	out := []Band{{Low: math.Inf(-1), High: math.Inf(1)}}
	for _, f := range filters {
		out = IntersectBands(out, MergeBands(f.Passbands()))
		if len(out) == 0 {
			return nil
		}
	}
	return out
}
