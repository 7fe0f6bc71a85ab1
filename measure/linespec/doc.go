// Package linespec builds line spectra from sampled data. It turns a block
// of time-domain samples, or FFT bins a caller already holds, into impulse
// components at bin frequencies, ready for spectral algebra and rendering.
//
// The capture is treated as one period of a periodic signal: bins are taken
// one-sided (k = 0..N/2), scaled by 1/N, and interior bins are doubled so a
// real sine of amplitude A at an exact bin frequency comes out as a single
// impulse of mass A. No window is applied; off-bin tones leak, which is the
// expected trade for exact line amplitudes.
//
// Typical use:
//
//	s, err := linespec.Analyze(samples, linespec.Config{
//	    ProcessorConfig: core.ProcessorConfig{SampleRate: 48000},
//	    MinMagnitude:    1e-9,
//	})
//	// s now holds one delta per spectral line above the threshold.
package linespec
