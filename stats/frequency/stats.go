package frequency

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/integrate"

	"github.com/agustin-d-martinez/spectrum-graphics/render"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/spectrum"
)

// Stats holds descriptive statistics of a spectrum sampled on a frequency
// grid. Magnitudes are linear, integrals use the trapezoidal rule over the
// grid frequencies.
type Stats struct {
	Points   int
	Peak     float64 // largest magnitude
	Peak_dB  float64
	PeakFreq float64 // grid frequency of the peak
	Min      float64
	MinFreq  float64
	Mean     float64 // arithmetic mean of the magnitudes
	Mean_dB  float64
	Energy   float64 // integral of |X(f)|^2 over the grid
	// Spectral shape descriptors
	Centroid  float64 // magnitude-weighted mean frequency (Hz)
	Spread    float64 // magnitude-weighted standard deviation around the centroid (Hz)
	Flatness  float64 // geometric over arithmetic mean of the magnitudes, 0..1
	Rolloff   float64 // frequency below which 85% of the energy lies (Hz)
	Bandwidth float64 // 3 dB width around the peak (Hz)
}

// Calculate computes all statistics of a sampled curve, typically the result
// of [render.Polyline]. The grid must be in ascending order. A curve whose
// slices disagree in length is treated as empty, and a curve with fewer than
// two points gets the point statistics only.
func Calculate(c render.Curve) Stats {
	n := len(c.Freqs)
	if n == 0 || len(c.Values) != n {
		return Stats{Peak_dB: math.Inf(-1), Mean_dB: math.Inf(-1)}
	}

	mag := render.Magnitude(c.Values)

	var s Stats
	s.Points = n
	s.Peak = mag[0]
	s.PeakFreq = c.Freqs[0]
	s.Min = mag[0]
	s.MinFreq = c.Freqs[0]

	sum := 0.0
	for i, v := range mag {
		sum += v
		if v > s.Peak {
			s.Peak = v
			s.PeakFreq = c.Freqs[i]
		}
		if v < s.Min {
			s.Min = v
			s.MinFreq = c.Freqs[i]
		}
	}
	s.Peak_dB = core.LinearToDB(s.Peak)
	s.Mean = sum / float64(n)
	s.Mean_dB = core.LinearToDB(s.Mean)
	s.Flatness = flatness(mag)

	if n < 2 {
		return s
	}

	sq := make([]float64, n)
	for i, v := range mag {
		sq[i] = v * v
	}
	s.Energy = integrate.Trapezoidal(c.Freqs, sq)

	s.Centroid = centroid(c.Freqs, mag)
	s.Spread = spread(c.Freqs, mag, s.Centroid)
	s.Rolloff = rolloff(c.Freqs, sq, 0.85, s.Energy)
	s.Bandwidth = bandwidth(c.Freqs, mag)

	return s
}

// Centroid returns the magnitude-weighted mean frequency of the curve.
//
//	centroid = integral(f * |X(f)|) / integral(|X(f)|)
func Centroid(c render.Curve) float64 {
	n := len(c.Freqs)
	if n < 2 || len(c.Values) != n {
		return 0
	}
	return centroid(c.Freqs, render.Magnitude(c.Values))
}

func centroid(freqs, mag []float64) float64 {
	total := integrate.Trapezoidal(freqs, mag)
	if total == 0 {
		return 0
	}

	weighted := make([]float64, len(mag))
	for i, v := range mag {
		weighted[i] = freqs[i] * v
	}

	return integrate.Trapezoidal(freqs, weighted) / total
}

// spread computes the magnitude-weighted standard deviation of the frequency
// around the centroid.
func spread(freqs, mag []float64, cent float64) float64 {
	total := integrate.Trapezoidal(freqs, mag)
	if total == 0 {
		return 0
	}

	weighted := make([]float64, len(mag))
	for i, v := range mag {
		diff := freqs[i] - cent
		weighted[i] = diff * diff * v
	}

	return math.Sqrt(integrate.Trapezoidal(freqs, weighted) / total)
}

// Flatness returns the spectral flatness (Wiener entropy) of the curve in
// the range 0..1. A flat magnitude profile yields 1; any zero magnitude
// forces the geometric mean, and with it the flatness, to 0.
func Flatness(c render.Curve) float64 {
	return flatness(render.Magnitude(c.Values))
}

func flatness(mag []float64) float64 {
	n := len(mag)
	if n == 0 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, v := range mag {
		if v == 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	meanLin := sumLin / float64(n)
	if meanLin == 0 {
		return 0
	}

	return math.Exp(sumLog/float64(n)) / meanLin
}

// Rolloff returns the frequency below which the given fraction (0..1) of the
// curve's energy lies. Energy is the integral of the squared magnitude. A
// typical fraction is 0.85.
func Rolloff(c render.Curve, fraction float64) float64 {
	n := len(c.Freqs)
	if n < 2 || len(c.Values) != n {
		return 0
	}

	mag := render.Magnitude(c.Values)
	sq := make([]float64, n)
	for i, v := range mag {
		sq[i] = v * v
	}

	return rolloff(c.Freqs, sq, fraction, integrate.Trapezoidal(c.Freqs, sq))
}

func rolloff(freqs, sq []float64, fraction, energy float64) float64 {
	n := len(freqs)
	if n < 2 || energy <= 0 {
		return 0
	}

	threshold := fraction * energy
	cum := 0.0
	for i := 1; i < n; i++ {
		cum += 0.5 * (sq[i-1] + sq[i]) * (freqs[i] - freqs[i-1])
		if cum >= threshold {
			return freqs[i]
		}
	}

	return freqs[n-1]
}

// Bandwidth returns the 3 dB bandwidth around the curve's magnitude peak in
// Hz.
//
// The peak point is found, and then the -3 dB points (where the magnitude
// drops to peak/sqrt(2)) are located on both sides. Linear interpolation
// between grid points is used for more precise estimation.
func Bandwidth(c render.Curve) float64 {
	n := len(c.Freqs)
	if n < 2 || len(c.Values) != n {
		return 0
	}
	return bandwidth(c.Freqs, render.Magnitude(c.Values))
}

func bandwidth(freqs, mag []float64) float64 {
	n := len(mag)
	if n < 2 {
		return 0
	}

	peakIdx := 0
	peakVal := mag[0]
	for i, v := range mag {
		if v > peakVal {
			peakVal = v
			peakIdx = i
		}
	}
	if peakVal == 0 {
		return 0
	}

	threshold := peakVal / math.Sqrt2

	// Find the lower -3 dB point (search left from the peak).
	lower := freqs[0]
	for i := peakIdx; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lower = crossing(freqs[i-1], freqs[i], mag[i-1], mag[i], threshold)
			break
		}
	}

	// Find the upper -3 dB point (search right from the peak).
	upper := freqs[n-1]
	for i := peakIdx; i < n-1; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upper = crossing(freqs[i], freqs[i+1], mag[i], mag[i+1], threshold)
			break
		}
	}

	bw := upper - lower
	if bw < 0 {
		return 0
	}
	return bw
}

// crossing linearly interpolates the frequency where the magnitude passes
// the given threshold between two neighboring grid points.
func crossing(fLow, fHigh, magLow, magHigh, threshold float64) float64 {
	denom := magHigh - magLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - magLow) / denom
	return fLow + t*(fHigh-fLow)
}

// MassStats holds exact statistics of a set of impulse masses. Unlike
// [Stats] nothing is sampled or integrated; the point masses are summed
// directly.
type MassStats struct {
	Count    int
	Total    float64 // sum of the mass magnitudes
	Total_dB float64
	Peak     float64 // largest mass magnitude
	Peak_dB  float64
	PeakFreq float64
	Centroid float64 // magnitude-weighted mean frequency (Hz)
	Spread   float64 // magnitude-weighted standard deviation (Hz)
}

// CalculateMasses computes the statistics of the given impulse masses,
// typically the result of [spectrum.Spectrum.Masses].
func CalculateMasses(masses []spectrum.Mass) MassStats {
	var s MassStats
	s.Count = len(masses)
	if s.Count == 0 {
		s.Total_dB = math.Inf(-1)
		s.Peak_dB = math.Inf(-1)
		return s
	}

	for _, m := range masses {
		a := cmplx.Abs(m.Amp)
		s.Total += a
		if a > s.Peak {
			s.Peak = a
			s.PeakFreq = m.Freq
		}
	}
	s.Total_dB = core.LinearToDB(s.Total)
	s.Peak_dB = core.LinearToDB(s.Peak)

	if s.Total == 0 {
		return s
	}

	weighted := 0.0
	for _, m := range masses {
		weighted += m.Freq * cmplx.Abs(m.Amp)
	}
	s.Centroid = weighted / s.Total

	sqSum := 0.0
	for _, m := range masses {
		diff := m.Freq - s.Centroid
		sqSum += diff * diff * cmplx.Abs(m.Amp)
	}
	s.Spread = math.Sqrt(sqSum / s.Total)

	return s
}
