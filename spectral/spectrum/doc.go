// Package spectrum aggregates analytic components into an immutable
// frequency-domain scene.
//
// A Spectrum is an ordered list of components under superposition: evaluation
// sums the pointwise values of its continuous shapes, while impulses carry
// point masses reported separately. Combinators such as Add, Scale, Shift,
// Mix, and ApplyFilter return new spectra and leave the receiver untouched,
// so intermediate scenes stay valid and can be shared across goroutines.
//
// Overlapping components are kept as-is rather than merged; a spectrum is a
// description of how a scene was built, not a canonical form.
package spectrum
