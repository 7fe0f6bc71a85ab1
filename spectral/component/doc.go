// Package component provides the analytic building blocks of a line-and-shape
// frequency spectrum.
//
// A Component places one of a small closed set of magnitude shapes on the
// frequency axis: a Dirac impulse, a rectangular block, a symmetric triangle,
// or one of its two half-triangle flanks. Each shape is described exactly by a
// center frequency f0, a complex amplitude A, and a half-width w, so every
// operation on it stays analytic instead of resampling onto a grid.
//
// Supports are closed intervals. Blocks and symmetric triangles cover
// [f0-w, f0+w]; a left triangle rises from zero at f0-w to its peak at f0; a
// right triangle falls from its peak at f0 to zero at f0+w. Impulses carry
// their amplitude as a point mass at f0 and evaluate to zero everywhere.
//
// Components are immutable values. Transformations such as Shift, Scale,
// Mirror, and Clip return new components and never mutate the receiver, so
// values can be shared freely across goroutines and aggregates.
//
// Clip restricts a component to a closed frequency band and always yields at
// most one component. Impulses and blocks clip exactly; triangle shapes clip
// exactly when the cut removes a peak, and otherwise re-derive the nearest
// single-shape approximation that keeps the peak and stays inside the band.
package component
