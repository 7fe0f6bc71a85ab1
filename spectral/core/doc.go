// Package core provides small numeric and interval helpers shared by the
// spectral packages.
//
// Everything in this package operates on plain float64 values. Frequency
// intervals are represented as (lo, hi) pairs of closed bounds; infinite
// bounds are permitted and describe half-open axes.
package core
