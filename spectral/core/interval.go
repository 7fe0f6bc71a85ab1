package core

import "math"

// IntersectInterval returns the overlap of the closed intervals [aLo, aHi]
// and [bLo, bHi]. ok is false when the intervals are disjoint or any bound
// is NaN. Infinite bounds are valid.
func IntersectInterval(aLo, aHi, bLo, bHi float64) (lo, hi float64, ok bool) {
	if math.IsNaN(aLo) || math.IsNaN(aHi) || math.IsNaN(bLo) || math.IsNaN(bHi) {
		return 0, 0, false
	}

	lo = math.Max(aLo, bLo)
	hi = math.Min(aHi, bHi)
	if lo > hi {
		return 0, 0, false
	}

	return lo, hi, true
}

// IntervalContains reports whether f lies in the closed interval [lo, hi].
// NaN arguments never match.
func IntervalContains(lo, hi, f float64) bool {
	return lo <= f && f <= hi
}
