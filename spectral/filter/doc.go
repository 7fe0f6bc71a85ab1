// Package filter provides ideal band-selection masks over analytic spectrum
// components.
//
// A Filter is a brick-wall frequency mask: low-pass, high-pass, band-pass, or
// band-stop, with closed band edges and an optional passband gain. Filters do
// not model realizable responses; they act structurally, clipping components
// to the pass region so the result is again a small list of analytic
// components.
package filter
