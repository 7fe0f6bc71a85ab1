package render

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |v| for each curve value.
//
// The conversion uses SIMD-optimized kernels when available. Scratch buffers
// are pooled internally, so in steady state this allocates only the output
// slice.
func Magnitude(values []complex128) []float64 {
	if len(values) == 0 {
		return nil
	}
	return MagnitudeInto(make([]float64, len(values)), values)
}

// MagnitudeInto writes |v| for each curve value into dst, growing it as
// needed, and returns it. Reusing dst across frames avoids the per-call
// allocation in animation loops.
func MagnitudeInto(dst []float64, values []complex128) []float64 {
	if len(values) == 0 {
		return dst[:0]
	}

	dst = core.EnsureLen(dst, len(values))
	re, im, buf := getScratch(len(values))

	for i, v := range values {
		re[i] = real(v)
		im[i] = imag(v)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
	return dst
}

// Power returns |v|^2 for each curve value.
//
// Like Magnitude this unpacks into pooled scratch buffers and converts with
// SIMD-optimized kernels when available.
func Power(values []complex128) []float64 {
	if len(values) == 0 {
		return nil
	}

	out := make([]float64, len(values))
	re, im, buf := getScratch(len(values))

	for i, v := range values {
		re[i] = real(v)
		im[i] = imag(v)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeDB returns 20*log10(|v|) for each curve value, clamped below to
// floorDB so silent regions plot at the floor instead of -Inf.
func MagnitudeDB(values []complex128, floorDB float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		db := core.LinearToDB(cmplx.Abs(v))
		if db < floorDB {
			db = floorDB
		}
		out[i] = db
	}
	return out
}

// PeakMagnitude returns the largest |v| in values, or 0 for an empty slice.
func PeakMagnitude(values []complex128) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(Magnitude(values))
}
