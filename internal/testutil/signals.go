package testutil

import "math"

// BinTone generates amp*cos(2*pi*bin*i/n + phase) for i = 0..n-1. The tone
// is period-aligned: it lands exactly on FFT bin `bin` of an n-point
// transform, so its expected line spectrum is closed-form.
func BinTone(n, bin int, amp, phase float64) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * float64(bin) / float64(n)
	for i := range out {
		out[i] = amp * math.Cos(step*float64(i)+phase)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// MixSignals sums the given signals sample by sample. All inputs must share
// the length of the first.
func MixSignals(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}
