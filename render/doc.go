// Package render turns spectra into plain numeric data for plotting front
// ends: frequency grids, sampled curves, exact per-shape polylines, impulse
// markers, axis extents and passband shading spans.
//
// Nothing here draws. Every function returns slices or small value types a
// caller can hand to whatever plotting or UI layer it uses. Curve values
// stay complex; Magnitude, Power and MagnitudeDB convert them in bulk.
package render
